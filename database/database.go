package database

import (
	"fmt"

	"riz-interiors-server/internal/domain/blogs"
	"riz-interiors-server/internal/domain/consultations"
	"riz-interiors-server/internal/domain/gallery"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and migrates the schema. The
// returned handle is passed explicitly into every handler; there is no
// package-level singleton.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the four resource tables, including the
// unique indexes and constraints the handlers rely on as backstops.
// Exported so tests can run the same schema on an in-memory store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&gallery.Collection{},
		&gallery.InteriorImage{},
		&blogs.Blog{},
		&consultations.Consultation{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
