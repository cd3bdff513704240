package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"clinic-backend/models"
)

// FileStore persists the room dataset and specialty catalog as two JSON
// documents. Writes go through an atomic temp-file-then-rename commit,
// and Update serializes read-modify-write cycles through a mutex so a
// reservation never overwrites another call's commit.
type FileStore struct {
	mu              sync.Mutex
	roomsPath       string
	specialtiesPath string
}

func NewFileStore(roomsPath, specialtiesPath string) *FileStore {
	return &FileStore{roomsPath: roomsPath, specialtiesPath: specialtiesPath}
}

func (s *FileStore) LoadRooms() (models.RoomFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRooms()
}

func (s *FileStore) SaveRooms(doc models.RoomFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveRooms(doc)
}

func (s *FileStore) LoadSpecialties() (models.SpecialtyFile, error) {
	raw, err := readDocument(s.specialtiesPath)
	if err != nil {
		return models.SpecialtyFile{}, err
	}
	var doc models.SpecialtyFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.SpecialtyFile{}, models.Errorf(models.KindFormat,
			"Specialty catalog %s is not valid JSON.", filepath.Base(s.specialtiesPath))
	}
	return doc, nil
}

func (s *FileStore) Update(fn func(*models.RoomFile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadRooms()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.saveRooms(doc)
}

func (s *FileStore) loadRooms() (models.RoomFile, error) {
	raw, err := readDocument(s.roomsPath)
	if err != nil {
		return models.RoomFile{}, err
	}
	var doc models.RoomFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.RoomFile{}, models.Errorf(models.KindFormat,
			"Room dataset %s is not valid JSON.", filepath.Base(s.roomsPath))
	}
	if err := rejectDuplicateNames(doc.Rooms); err != nil {
		return models.RoomFile{}, err
	}
	return doc, nil
}

func (s *FileStore) saveRooms(doc models.RoomFile) error {
	return atomicWriteJSON(s.roomsPath, doc)
}

func readDocument(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, models.Errorf(models.KindNotFound, "Data file not found: %s.", path)
	}
	if err != nil {
		return nil, models.WrapIO(fmt.Sprintf("Could not read %s.", filepath.Base(path)), err)
	}
	return raw, nil
}

// Room names are the reservation selector, so the dataset must not carry
// two rooms whose names collide case-insensitively.
func rejectDuplicateNames(rooms []models.Room) error {
	seen := make(map[string]string, len(rooms))
	for _, r := range rooms {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			return models.Errorf(models.KindFormat,
				"Room dataset contains duplicate room name %q (also %q).", r.Name, first)
		}
		seen[key] = r.Name
	}
	return nil
}

// atomicWriteJSON writes v next to path and renames it into place, so
// the previous document stays intact until the replacement is durable.
func atomicWriteJSON(path string, v any) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "tmp_*.json")
	if err != nil {
		return models.WrapIO("Could not create temporary file for commit.", err)
	}
	tmpName := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return models.WrapIO("Could not serialize dataset.", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return models.WrapIO("Could not flush dataset to disk.", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return models.WrapIO("Could not finalize temporary file.", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return models.WrapIO("Could not replace dataset file.", err)
	}
	return nil
}
