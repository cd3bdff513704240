package services

import (
	"regexp"
	"time"

	"clinic-backend/models"
)

// ClockMinutes is a time of day as minutes since midnight.
type ClockMinutes int

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock accepts exactly two-digit 24h "HH:MM".
func ParseClock(s string) (ClockMinutes, error) {
	if !clockPattern.MatchString(s) {
		return 0, models.Errorf(models.KindFormat,
			"Invalid time %q. Use the 24h HH:MM format.", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, models.Errorf(models.KindFormat,
			"Invalid time %q. Use the 24h HH:MM format.", s)
	}
	return ClockMinutes(t.Hour()*60 + t.Minute()), nil
}

// InRange reports whether t falls within [start, end], inclusive at
// both ends. It does not check that start precedes end; an inverted
// window simply never matches.
func InRange(t, start, end ClockMinutes) bool {
	return t >= start && t <= end
}
