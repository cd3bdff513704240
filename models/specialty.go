package models

type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
}

// SpecialtyFile is the read-only specialty catalog document. It is
// independent of the room dataset; nothing enforces that a room's
// embedded specialty appears in it.
type SpecialtyFile struct {
	Specialties []Specialty `json:"specialties"`
}
