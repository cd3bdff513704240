package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"clinic-backend/config"
	"clinic-backend/controllers"
	"clinic-backend/routes"
	"clinic-backend/services"
	"clinic-backend/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	settings := config.LoadSettings()

	var store storage.Backend
	switch settings.StorageBackend {
	case config.BackendMySQL:
		if err := config.ConnectDatabase(); err != nil {
			log.Fatalf("❌ Database connect failed: %v", err)
		}
		if config.DB == nil {
			log.Fatal("❌ config.DB is nil after ConnectDatabase()")
		}
		log.Println("✅ Database connection established and migrations applied.")
		store = storage.NewGormStore(config.DB)
	case config.BackendFile:
		store = storage.NewFileStore(settings.RoomsFile, settings.SpecialtiesFile)
		log.Printf("✅ File storage: rooms=%s specialties=%s", settings.RoomsFile, settings.SpecialtiesFile)
	default:
		log.Fatalf("❌ Unknown STORAGE_BACKEND %q (want %q or %q)",
			settings.StorageBackend, config.BackendFile, config.BackendMySQL)
	}

	// Initialize services
	specialtyService := services.NewSpecialtyService(store)
	roomService := services.NewRoomService(store)
	reservationService := services.NewReservationService(store)

	// Initialize controllers
	specialtyController := controllers.NewSpecialtyController(specialtyService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)

	// Build router
	router := routes.SetupRouter(specialtyController, roomController, reservationController)

	addr := ":" + settings.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
