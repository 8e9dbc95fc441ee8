package db

import (
	"database/sql"
	"fmt"
	"log"

	"kasirpos/internal/config"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// InitDB opens the store database and exits the process when it is
// unreachable. A POS terminal cannot do anything useful without its store.
func InitDB(cfg *config.Config) *sql.DB {
	database, err := NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	log.Printf("Database connection established (%s)", cfg.DBDriver)
	return database
}

// NewDatabase opens a handle for the configured driver: a local sqlite file
// by default, postgres when the shop runs a central database.
func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return newDatabaseWithDriver("postgres", buildDSN(cfg))
	case "sqlite", "":
		return newDatabaseWithDriver("sqlite3", cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB driver: %s", cfg.DBDriver)
	}
}

func newDatabaseWithDriver(driver, dsn string) (*sql.DB, error) {
	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err = database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return database, nil
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}
