package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-backend/controllers"
	"clinic-backend/models"
	"clinic-backend/routes"
	"clinic-backend/services"
	"clinic-backend/storage"
)

func newTestServer(t *testing.T, rooms []models.Room, specialties []models.Specialty) (*gin.Engine, *storage.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := storage.NewFileStore(
		filepath.Join(dir, "rooms.json"),
		filepath.Join(dir, "specialties.json"),
	)
	require.NoError(t, store.SaveRooms(models.RoomFile{Rooms: rooms}))

	// The catalog file is read-only at runtime; write it directly.
	specDoc, err := json.Marshal(models.SpecialtyFile{Specialties: specialties})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "specialties.json"), specDoc, 0o644))

	router := routes.SetupRouter(
		controllers.NewSpecialtyController(services.NewSpecialtyService(store)),
		controllers.NewRoomController(services.NewRoomService(store)),
		controllers.NewReservationController(services.NewReservationService(store)),
	)
	return router, store
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func fixtureRooms() []models.Room {
	return []models.Room{
		{
			Name:      "Room Orthodontics",
			Specialty: models.Specialty{ID: "ESP-002", Name: "Orthodontics", DurationMin: 45},
			Location:  "First floor",
			Hours:     models.Schedule{Start: "08:00", End: "12:00"},
		},
		{
			Name:      "Room General",
			Specialty: models.Specialty{ID: "ESP-001", Name: "General Dentistry", DurationMin: 30},
			Location:  "Ground floor",
			Hours:     models.Schedule{Start: "08:00", End: "17:00"},
		},
	}
}

func fixtureSpecialties() []models.Specialty {
	return []models.Specialty{
		{ID: "ESP-001", Name: "General Dentistry", DurationMin: 30},
		{ID: "ESP-002", Name: "Orthodontics", DurationMin: 45},
	}
}

func TestGetSpecialties(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodGet, "/api/specialties", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(2), body["count"])
}

func TestGetSpecialtiesMissingCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	store := storage.NewFileStore(filepath.Join(dir, "rooms.json"), filepath.Join(dir, "specialties.json"))
	router := routes.SetupRouter(
		controllers.NewSpecialtyController(services.NewSpecialtyService(store)),
		controllers.NewRoomController(services.NewRoomService(store)),
		controllers.NewReservationController(services.NewReservationService(store)),
	)

	w := do(router, http.MethodGet, "/api/specialties", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.NotEmpty(t, body["error"])
}

func TestGetAvailableRoomsListing(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodGet, "/api/rooms/available?specialty=orthodontics", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	message := body["message"].(string)
	assert.Contains(t, message, "Room Orthodontics")
	assert.NotContains(t, message, "Room General")
	assert.Contains(t, message, "08:00 - 12:00")
}

func TestGetAvailableRoomsNoneAvailableIsOK(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodGet, "/api/rooms/available?specialty=Surgery", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Contains(t, body["message"], "No rooms available for Surgery")
}

func TestReserveEndpointSuccess(t *testing.T) {
	router, store := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations",
		`{"patient": "Ana", "time": "09:00", "room": "Room Orthodontics"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	message := body["message"].(string)
	assert.Contains(t, message, "Ana")
	assert.Contains(t, message, "Room Orthodontics")
	assert.Contains(t, message, "09:00")

	doc, err := store.LoadRooms()
	require.NoError(t, err)
	assert.Equal(t, "Ana", doc.Rooms[0].Patient)
}

func TestReserveEndpointConflict(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations",
		`{"patient": "Ana", "time": "09:00", "room": "Room Orthodontics"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/reservations",
		`{"patient": "Luis", "time": "10:00", "room": "Room Orthodontics"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "Ana")
}

func TestReserveEndpointOutOfHours(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations",
		`{"patient": "Ana", "time": "13:00", "room": "Room Orthodontics"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "out of hours")
}

func TestReserveEndpointUnknownRoom(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations",
		`{"patient": "Ana", "time": "09:00", "room": "Room X"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "Room X")
}

func TestReserveEndpointBadTime(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations",
		`{"patient": "Ana", "time": "9am", "room": "Room Orthodontics"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "HH:MM")
}

func TestReserveEndpointEmptyPatient(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations",
		`{"patient": "  ", "time": "09:00", "room": "Room Orthodontics"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "patient name")
}

func TestReserveEndpointMalformedBody(t *testing.T) {
	router, _ := newTestServer(t, fixtureRooms(), fixtureSpecialties())

	w := do(router, http.MethodPost, "/api/reservations", `{"patient":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
}
