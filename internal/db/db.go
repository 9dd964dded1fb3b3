package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jalmitra/internal/config"
	"jalmitra/internal/grievance"
	"jalmitra/internal/ratings"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	// The grievance table is usually populated by the department portal;
	// migrating it here keeps fresh deployments usable.
	if err := db.AutoMigrate(&grievance.Record{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&ratings.Rating{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")
	return nil
}
