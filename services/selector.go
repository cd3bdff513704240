package services

import (
	"strings"

	"clinic-backend/models"
)

// RoomSelector is a closed selector type for reservation targets. Today
// rooms are selected by name only; an id-based constructor can be added
// without touching the Reserve signature.
type RoomSelector struct {
	name string
}

func ByName(name string) RoomSelector {
	return RoomSelector{name: strings.TrimSpace(name)}
}

func (s RoomSelector) String() string {
	if s.name == "" {
		return "(no room given)"
	}
	return s.name
}

func (s RoomSelector) matches(r models.Room) bool {
	return s.name != "" && strings.EqualFold(strings.TrimSpace(r.Name), s.name)
}
