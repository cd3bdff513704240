package models

import "strings"

// Schedule is a room's daily operating window, both ends inclusive,
// stored as "HH:MM" strings exactly as they appear in the data file.
type Schedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Room struct {
	Name      string    `json:"name"`
	Specialty Specialty `json:"specialty"`
	Location  string    `json:"location"`
	Hours     Schedule  `json:"hours"`

	// Patient holds the occupant's name; empty means the room is free.
	Patient string `json:"patient"`
}

func (r Room) Occupied() bool {
	return strings.TrimSpace(r.Patient) != ""
}

// RoomFile is the persisted room dataset: one document, one top-level field.
type RoomFile struct {
	Rooms []Room `json:"rooms"`
}
