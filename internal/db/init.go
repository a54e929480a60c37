package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"embed"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var sqlFiles embed.FS

var (
	db       *sql.DB
	dbErr    error
	dbCreate sync.Once
)

// GetDB opens the database once, creating it if needed.
func GetDB() *sql.DB {
	dbCreate.Do(func() {
		db, dbErr = createDB()
		if dbErr != nil {
			log.Fatalf("error getting db: %v", dbErr)
		}
	})
	return db
}

// ApplySchema creates the tables if they don't exist. Exposed so tests can
// run against an in-memory database.
func ApplySchema(db *sql.DB) error {
	schema, _ := sqlFiles.ReadFile("schema.sql")
	if _, err := db.Exec(string(schema)); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}
	return nil
}

// opens the sqlite database, creating it if needed.
// Note: xdg.DataHome is ~/Library/Application Support by default on macOS?
func createDB() (*sql.DB, error) {
	dataDir := filepath.Join(xdg.DataHome, "monkeychat")
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, "monkeychat.sqlite")
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging db: %w", err)
	}

	if err := ApplySchema(db); err != nil {
		return nil, err
	}
	return db, nil
}
