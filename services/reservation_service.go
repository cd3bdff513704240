package services

import (
	"strings"

	"clinic-backend/models"
	"clinic-backend/storage"
)

// ReservationService owns the only exposed room state transition:
// free → occupied. Every call is a full load→validate→mutate→commit
// cycle against the storage backend; nothing is cached between calls.
type ReservationService struct {
	store storage.Backend
}

func NewReservationService(store storage.Backend) *ReservationService {
	return &ReservationService{store: store}
}

// Confirmation carries the display fields of a successful reservation.
type Confirmation struct {
	Patient   string
	Room      string
	Specialty string
	Location  string
	Time      string
	Start     string
	End       string
}

// Reserve books a room for a patient at the given HH:MM time. The
// pipeline short-circuits on the first failure and persists nothing on
// any failure path: the room lookup, schedule checks, occupancy check
// and mutation all run inside one storage Update, so concurrent calls
// against the same room see each other's commits and at most one wins.
func (s *ReservationService) Reserve(patient, clock string, sel RoomSelector) (Confirmation, error) {
	patient = strings.TrimSpace(patient)
	if patient == "" {
		return Confirmation{}, models.Errorf(models.KindValidation,
			"The patient name is required.")
	}

	requested, err := ParseClock(clock)
	if err != nil {
		return Confirmation{}, err
	}

	var conf Confirmation
	err = s.store.Update(func(doc *models.RoomFile) error {
		room := findRoom(doc, sel)
		if room == nil {
			return models.Errorf(models.KindNotFound,
				"No room matches %s.", sel)
		}

		start, startErr := ParseClock(room.Hours.Start)
		end, endErr := ParseClock(room.Hours.End)
		if startErr != nil || endErr != nil {
			return models.Errorf(models.KindConfig,
				"Room %q has no valid operating schedule configured.", room.Name)
		}

		if !InRange(requested, start, end) {
			return models.Errorf(models.KindConflict,
				"Room %q takes reservations from %s to %s; %s is out of hours.",
				room.Name, room.Hours.Start, room.Hours.End, clock)
		}

		if room.Occupied() {
			return models.Errorf(models.KindConflict,
				"Room %q is already reserved by %s.", room.Name, room.Patient)
		}

		room.Patient = patient
		conf = Confirmation{
			Patient:   patient,
			Room:      room.Name,
			Specialty: room.Specialty.Name,
			Location:  room.Location,
			Time:      clock,
			Start:     room.Hours.Start,
			End:       room.Hours.End,
		}
		return nil
	})
	if err != nil {
		return Confirmation{}, err
	}
	return conf, nil
}

// findRoom resolves the selector against the dataset. Duplicate names
// are rejected when the dataset loads, so a match is unambiguous.
func findRoom(doc *models.RoomFile, sel RoomSelector) *models.Room {
	for i := range doc.Rooms {
		if sel.matches(doc.Rooms[i]) {
			return &doc.Rooms[i]
		}
	}
	return nil
}
