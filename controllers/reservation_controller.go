package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/models"
	"clinic-backend/services"
	"clinic-backend/utils"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

type reserveRequest struct {
	Patient string `json:"patient"`
	Time    string `json:"time"`
	Room    string `json:"room"`
}

// Reserve (POST /api/reservations) runs the full reservation pipeline
// and always answers with the {ok, message} contract; the caller never
// sees a raw fault.
func (rc *ReservationController) Reserve(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONFail(c, http.StatusBadRequest, "❌ Invalid request payload.")
		return
	}

	conf, err := rc.service.Reserve(req.Patient, req.Time, services.ByName(req.Room))
	if err != nil {
		log.Printf("⚠️ Reservation rejected (%s): %v", models.KindOf(err), err)
		utils.JSONFail(c, statusFor(err), failureMessage(err))
		return
	}

	log.Printf("✅ Room %q reserved for %s at %s", conf.Room, conf.Patient, conf.Time)
	utils.JSONOK(c, http.StatusCreated, formatConfirmation(conf))
}

func failureMessage(err error) string {
	switch models.KindOf(err) {
	case models.KindNotFound:
		return "🔎 " + models.DisplayMessage(err)
	case models.KindConflict:
		return "🚫 " + models.DisplayMessage(err)
	default:
		return "❌ " + models.DisplayMessage(err)
	}
}

func formatConfirmation(conf services.Confirmation) string {
	return fmt.Sprintf(
		"✅ Reservation confirmed\n"+
			"• Patient: %s\n"+
			"• Room: %s\n"+
			"• Specialty: %s\n"+
			"• Location: %s\n"+
			"• Time: %s\n"+
			"• Room hours: %s - %s",
		conf.Patient, conf.Room, conf.Specialty, conf.Location,
		conf.Time, conf.Start, conf.End,
	)
}
