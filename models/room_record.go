package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomRecord is the MySQL row shape used by the gorm storage backend.
// The embedded specialty rides along as a JSON column so the row stays
// in step with the file document shape.
type RoomRecord struct {
	gorm.Model

	Name       string         `json:"name" gorm:"column:name;uniqueIndex;type:varchar(100)"`
	Specialty  datatypes.JSON `json:"specialty" gorm:"column:specialty"`
	Location   string         `json:"location" gorm:"type:varchar(120)"`
	HoursStart string         `json:"hoursStart" gorm:"column:hours_start;type:varchar(5)"`
	HoursEnd   string         `json:"hoursEnd" gorm:"column:hours_end;type:varchar(5)"`
	Patient    string         `json:"patient" gorm:"type:varchar(120)"`
}

type SpecialtyRecord struct {
	gorm.Model

	SpecialtyID string `json:"id" gorm:"column:specialty_id;uniqueIndex;type:varchar(30)"`
	Name        string `json:"name" gorm:"type:varchar(100)"`
	DurationMin int    `json:"duration_min" gorm:"column:duration_min"`
}
