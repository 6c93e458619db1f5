package db

import (
	"log"

	"mediaboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and runs migrations. The returned handle is the
// only one in the process; callers pass it down explicitly.
func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(database); err != nil {
		return nil, err
	}
	return database, nil
}

// Migrate is separate from Open so tests can run it against other dialectors.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.CatalogEntry{},
	)
}
