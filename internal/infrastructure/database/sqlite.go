package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/nasaem/pos-api/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the embedded SQLite store. This is the local-device
// backend: sales live in a single file next to the application, no database
// server required. The pure-Go driver keeps the binary cgo-free.
func NewSQLiteDB(cfg *config.StoreConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	// SQLite ships with foreign keys off; the sale_items cascade needs them.
	// The pragma goes in the DSN so every pooled connection gets it.
	dsn := cfg.SQLitePath + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	log.Printf("Opened SQLite store at %s", cfg.SQLitePath)
	return db, nil
}

// Open selects the persistence backend from configuration and runs
// migrations on it. Both backends satisfy the same repository contract.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch cfg.Store.Driver {
	case "sqlite":
		db, err = NewSQLiteDB(&cfg.Store)
	case "postgres", "":
		db, err = NewPostgresDB(&cfg.Database)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
