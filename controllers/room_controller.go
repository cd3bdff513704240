package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-backend/models"
	"clinic-backend/services"
	"clinic-backend/utils"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// GetAvailableRooms (GET /api/rooms/available?specialty=) answers with a
// chat-ready listing. No matching rooms is a normal ok:true notice, not
// a failure.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	specialty := strings.TrimSpace(c.Query("specialty"))

	rooms, err := rc.service.ListAvailable(specialty)
	if err != nil {
		log.Printf("❌ Room dataset read failed: %v", err)
		utils.JSONError(c, statusFor(err), err)
		return
	}

	if len(rooms) == 0 {
		filter := specialty
		if filter == "" {
			filter = "any specialty"
		}
		utils.JSONOK(c, http.StatusOK,
			fmt.Sprintf("🔎 No rooms available for %s right now.", filter))
		return
	}

	utils.JSONOK(c, http.StatusOK, formatRoomListing(rooms))
}

func formatRoomListing(rooms []models.Room) string {
	lines := []string{"🏥 Available rooms:", ""}
	for _, room := range rooms {
		lines = append(lines, fmt.Sprintf(
			"• %s\n  Specialty: %s\n  Location: %s\n  Hours: %s - %s",
			room.Name, room.Specialty.Name, room.Location,
			room.Hours.Start, room.Hours.End,
		))
	}
	return strings.Join(lines, "\n")
}
