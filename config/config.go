package config

import (
	"os"
	"strings"
)

const (
	BackendFile  = "file"
	BackendMySQL = "mysql"
)

type Settings struct {
	Port            string
	StorageBackend  string
	RoomsFile       string
	SpecialtiesFile string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func LoadSettings() Settings {
	return Settings{
		Port:            envOrDefault("PORT", "8080"),
		StorageBackend:  strings.ToLower(envOrDefault("STORAGE_BACKEND", BackendFile)),
		RoomsFile:       envOrDefault("ROOMS_FILE", "data/rooms.json"),
		SpecialtiesFile: envOrDefault("SPECIALTIES_FILE", "data/specialties.json"),
	}
}
