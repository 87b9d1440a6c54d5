package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a pooled connection to the meetings database. Pool limits are sized
// for a single-instance service whose heaviest query is a one-day meeting
// listing.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open meetings database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify meetings database connection: %w", err)
	}

	return db, nil
}
