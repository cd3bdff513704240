package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinic-backend/models"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "clinic_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills in a starter catalog and room set when the tables
// are empty. Reruns are no-ops.
func SeedDatabase() {
	var specCount int64
	DB.Model(&models.SpecialtyRecord{}).Count(&specCount)
	if specCount == 0 {
		specialties := []models.SpecialtyRecord{
			{SpecialtyID: "ESP-001", Name: "General Dentistry", DurationMin: 30},
			{SpecialtyID: "ESP-002", Name: "Orthodontics", DurationMin: 45},
			{SpecialtyID: "ESP-003", Name: "Endodontics", DurationMin: 60},
		}
		if err := DB.Create(&specialties).Error; err != nil {
			log.Printf("warning: failed to seed specialties: %v", err)
		} else {
			log.Println("Specialties seeded")
		}
	}

	var roomCount int64
	DB.Model(&models.RoomRecord{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{
				Name:      "Room General A",
				Specialty: models.Specialty{ID: "ESP-001", Name: "General Dentistry", DurationMin: 30},
				Location:  "Ground floor, wing A",
				Hours:     models.Schedule{Start: "08:00", End: "17:00"},
			},
			{
				Name:      "Room Orthodontics",
				Specialty: models.Specialty{ID: "ESP-002", Name: "Orthodontics", DurationMin: 45},
				Location:  "First floor, wing B",
				Hours:     models.Schedule{Start: "09:00", End: "18:00"},
			},
		}
		records := make([]models.RoomRecord, 0, len(rooms))
		for _, room := range rooms {
			specJSON, err := json.Marshal(room.Specialty)
			if err != nil {
				log.Printf("warning: failed to serialize seed specialty: %v", err)
				continue
			}
			records = append(records, models.RoomRecord{
				Name:       room.Name,
				Specialty:  specJSON,
				Location:   room.Location,
				HoursStart: room.Hours.Start,
				HoursEnd:   room.Hours.End,
			})
		}
		if err := DB.Create(&records).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.SpecialtyRecord{},
		&models.RoomRecord{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
