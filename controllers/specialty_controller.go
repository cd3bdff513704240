package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/services"
	"clinic-backend/utils"
)

type SpecialtyController struct {
	service *services.SpecialtyService
}

func NewSpecialtyController(service *services.SpecialtyService) *SpecialtyController {
	return &SpecialtyController{service: service}
}

// GetSpecialties (GET /api/specialties) returns the raw catalog; the
// chat layer renders it however it likes.
func (sc *SpecialtyController) GetSpecialties(c *gin.Context) {
	specialties, err := sc.service.List()
	if err != nil {
		log.Printf("❌ Specialty catalog read failed: %v", err)
		utils.JSONError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"count":       len(specialties),
		"specialties": specialties,
	})
}
