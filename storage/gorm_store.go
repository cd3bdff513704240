package storage

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic-backend/models"
)

// GormStore backs the Backend contract with MySQL. Update runs inside a
// database transaction with the room rows locked, which gives the same
// at-most-one-winner guarantee the file store gets from its mutex.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LoadRooms() (models.RoomFile, error) {
	var records []models.RoomRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return models.RoomFile{}, models.WrapIO("Could not read rooms from database.", err)
	}
	return recordsToFile(records)
}

func (s *GormStore) SaveRooms(doc models.RoomFile) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return writeRooms(tx, doc)
	})
}

func (s *GormStore) LoadSpecialties() (models.SpecialtyFile, error) {
	var records []models.SpecialtyRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return models.SpecialtyFile{}, models.WrapIO("Could not read specialty catalog from database.", err)
	}
	doc := models.SpecialtyFile{Specialties: make([]models.Specialty, 0, len(records))}
	for _, rec := range records {
		doc.Specialties = append(doc.Specialties, models.Specialty{
			ID:          rec.SpecialtyID,
			Name:        rec.Name,
			DurationMin: rec.DurationMin,
		})
	}
	return doc, nil
}

func (s *GormStore) Update(fn func(*models.RoomFile) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var records []models.RoomRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("id").Find(&records).Error; err != nil {
			return models.WrapIO("Could not read rooms from database.", err)
		}
		doc, err := recordsToFile(records)
		if err != nil {
			return err
		}
		if err := fn(&doc); err != nil {
			return err
		}
		return writeRooms(tx, doc)
	})
}

func recordsToFile(records []models.RoomRecord) (models.RoomFile, error) {
	doc := models.RoomFile{Rooms: make([]models.Room, 0, len(records))}
	for _, rec := range records {
		var spec models.Specialty
		if len(rec.Specialty) > 0 {
			if err := json.Unmarshal(rec.Specialty, &spec); err != nil {
				return models.RoomFile{}, models.Errorf(models.KindFormat,
					"Room %q has a malformed specialty column.", rec.Name)
			}
		}
		doc.Rooms = append(doc.Rooms, models.Room{
			Name:      rec.Name,
			Specialty: spec,
			Location:  rec.Location,
			Hours:     models.Schedule{Start: rec.HoursStart, End: rec.HoursEnd},
			Patient:   rec.Patient,
		})
	}
	return doc, nil
}

func writeRooms(tx *gorm.DB, doc models.RoomFile) error {
	for _, room := range doc.Rooms {
		specJSON, err := json.Marshal(room.Specialty)
		if err != nil {
			return models.WrapIO("Could not serialize room specialty.", err)
		}
		updates := map[string]any{
			"specialty":   specJSON,
			"location":    room.Location,
			"hours_start": room.Hours.Start,
			"hours_end":   room.Hours.End,
			"patient":     room.Patient,
		}
		var existing models.RoomRecord
		err = tx.Where("name = ?", strings.TrimSpace(room.Name)).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Rooms are never created through the reservation flow; an
			// unknown name here means the dataset was handed in from
			// elsewhere, so persist it rather than drop it.
			record := models.RoomRecord{
				Name:       strings.TrimSpace(room.Name),
				Specialty:  specJSON,
				Location:   room.Location,
				HoursStart: room.Hours.Start,
				HoursEnd:   room.Hours.End,
				Patient:    room.Patient,
			}
			if err := tx.Create(&record).Error; err != nil {
				return models.WrapIO("Could not persist room.", err)
			}
			continue
		}
		if err != nil {
			return models.WrapIO("Could not look up room for update.", err)
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return models.WrapIO("Could not update room.", err)
		}
	}
	return nil
}
