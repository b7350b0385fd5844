// Package database owns the Postgres connection and the GORM-backed
// suggestion history store.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/musewave/musewave-api/internal/models"
)

// Connect opens the Postgres connection.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Migrate runs schema migrations for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SuggestionRecord{},
		&models.SuggestionCounter{},
	)
}
