package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-backend/models"
)

func orthoRoom(name string) models.Room {
	r := testRoom(name, "08:00", "17:00")
	return r
}

func generalRoom(name string) models.Room {
	r := testRoom(name, "08:00", "17:00")
	r.Specialty = models.Specialty{ID: "ESP-001", Name: "General Dentistry", DurationMin: 30}
	return r
}

func TestListAvailableExcludesOccupiedRooms(t *testing.T) {
	occupied := orthoRoom("Busy")
	occupied.Patient = "Ana"
	store, _ := newTestStore(t, occupied, orthoRoom("Free"))
	svc := NewRoomService(store)

	rooms, err := svc.ListAvailable("")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Free", rooms[0].Name)
}

func TestListAvailableFiltersBySpecialtyCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t, orthoRoom("Ortho A"), generalRoom("General A"), orthoRoom("Ortho B"))
	svc := NewRoomService(store)

	rooms, err := svc.ListAvailable("orthodontics")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	for _, r := range rooms {
		assert.Equal(t, "Orthodontics", r.Specialty.Name)
	}
}

func TestListAvailableFilterIsExactMatch(t *testing.T) {
	store, _ := newTestStore(t, orthoRoom("Ortho A"))
	svc := NewRoomService(store)

	rooms, err := svc.ListAvailable("Ortho")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestListAvailableEmptyResultIsNotAnError(t *testing.T) {
	occupied := orthoRoom("Busy")
	occupied.Patient = "Ana"
	store, _ := newTestStore(t, occupied)
	svc := NewRoomService(store)

	rooms, err := svc.ListAvailable("")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestListAvailableKeepsDatasetOrder(t *testing.T) {
	store, _ := newTestStore(t, orthoRoom("B"), orthoRoom("A"), orthoRoom("C"))
	svc := NewRoomService(store)

	rooms, err := svc.ListAvailable("")
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "B", rooms[0].Name)
	assert.Equal(t, "A", rooms[1].Name)
	assert.Equal(t, "C", rooms[2].Name)
}
