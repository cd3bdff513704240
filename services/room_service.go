package services

import (
	"strings"

	"clinic-backend/models"
	"clinic-backend/storage"
)

type RoomService struct {
	store storage.Backend
}

func NewRoomService(store storage.Backend) *RoomService {
	return &RoomService{store: store}
}

// ListAvailable returns the free rooms, optionally narrowed to an exact
// case-insensitive specialty name. An empty result is a normal outcome,
// not an error.
func (s *RoomService) ListAvailable(specialty string) ([]models.Room, error) {
	doc, err := s.store.LoadRooms()
	if err != nil {
		return nil, err
	}

	filter := strings.TrimSpace(specialty)
	available := make([]models.Room, 0, len(doc.Rooms))
	for _, room := range doc.Rooms {
		if room.Occupied() {
			continue
		}
		if filter != "" && !strings.EqualFold(strings.TrimSpace(room.Specialty.Name), filter) {
			continue
		}
		available = append(available, room)
	}
	return available, nil
}
