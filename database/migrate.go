package database

import (
	"fmt"
	"log"

	"pawmatch_backend/internal/config"
	"pawmatch_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes the shared GORM connection from configuration.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Pet{},
		&models.CaregiverProfile{},
		&models.CaregiverRate{},
		&models.CaregiverAvailability{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
		&models.Upload{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("AutoMigrate completed")
	return nil
}
