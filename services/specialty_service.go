package services

import (
	"clinic-backend/models"
	"clinic-backend/storage"
)

type SpecialtyService struct {
	store storage.Backend
}

func NewSpecialtyService(store storage.Backend) *SpecialtyService {
	return &SpecialtyService{store: store}
}

// List reads the specialty catalog through unchanged.
func (s *SpecialtyService) List() ([]models.Specialty, error) {
	doc, err := s.store.LoadSpecialties()
	if err != nil {
		return nil, err
	}
	return doc.Specialties, nil
}
