package storage

import "clinic-backend/models"

// Backend isolates the reservation pipeline from storage mechanics.
// The file implementation is the default; the gorm implementation backs
// the same contract with MySQL.
type Backend interface {
	// LoadRooms reads the full room dataset.
	LoadRooms() (models.RoomFile, error)

	// SaveRooms replaces the persisted dataset in one visible step; a
	// reader never observes a partial write.
	SaveRooms(models.RoomFile) error

	// LoadSpecialties reads the specialty catalog.
	LoadSpecialties() (models.SpecialtyFile, error)

	// Update runs fn inside a load→mutate→save critical section. If fn
	// returns an error nothing is persisted. Concurrent Updates are
	// serialized, so a read-modify-write cycle always sees the previous
	// cycle's commit.
	Update(fn func(*models.RoomFile) error) error
}
