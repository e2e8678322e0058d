package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies the embedded postgres migrations with goose
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// PrepareSchema brings the schema up to date: versioned migrations on
// postgres, gorm AutoMigrate on sqlite (development and tests).
func PrepareSchema(db *gorm.DB, driver string) error {
	switch driver {
	case DriverPostgres:
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
		log.Info("Applying postgres migrations")
		return Migrate(sqlDB)
	default:
		log.Info("Auto-migrating sqlite schema")
		return db.AutoMigrate(&models.Pizza{}, &models.Order{})
	}
}
