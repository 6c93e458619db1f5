package store

import (
	"testing"

	"mediaboard/internal/db"
	"mediaboard/internal/identity"
	"mediaboard/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func newTestUser(t *testing.T, database *gorm.DB, email, name string) *models.User {
	t.Helper()
	users := NewUserStore(database)
	user, err := users.Resolve(&identity.Claims{
		Email:         email,
		EmailVerified: true,
		Name:          name,
		Picture:       "https://example.com/" + name + ".png",
	})
	if err != nil {
		t.Fatalf("resolve user %s: %v", email, err)
	}
	return user
}
