package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"meeting-itinerary-service/internal/domain"
)

// Initialize the meetings schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createMeetingsQuery := `
	CREATE TABLE IF NOT EXISTS meetings (
		meeting_id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		start_clock TEXT,
		end_clock TEXT,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		priority INTEGER NOT NULL DEFAULT 0
	);
	`

	createDayIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_meetings_day
	ON meetings(day);
	`

	statements := []string{
		createMeetingsQuery,
		createDayIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type MeetingSeed struct {
	MeetingID       string   `json:"meeting_id"`
	Day             string   `json:"day"`
	Kind            string   `json:"kind"`
	Status          string   `json:"status"`
	StartClock      string   `json:"start_clock"`
	EndClock        string   `json:"end_clock"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
	DurationMinutes int      `json:"duration_minutes"`
	Priority        int      `json:"priority"`
}

// Populate the database with meeting data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed meetings: read %q: %w", jsonPath, err)
	}

	var data []MeetingSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed meetings: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.MeetingID) == "" {
			return fmt.Errorf("seed meetings: item at index %d: meeting_id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Day) == "" {
			return fmt.Errorf("seed meetings: meeting_id=%q: day cannot be empty", item.MeetingID)
		}

		// Catch malformed windows at seed time; a bad stored clock string
		// would otherwise fail every optimization for the day.
		for _, clock := range []string{item.StartClock, item.EndClock} {
			if clock == "" {
				continue
			}
			if _, err := domain.ParseClock(clock); err != nil {
				return fmt.Errorf("seed meetings: meeting_id=%q: %w", item.MeetingID, err)
			}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed meetings: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO meetings (
		meeting_id,
		day,
		kind,
		status,
		start_clock,
		end_clock,
		lat,
		lon,
		duration_minutes,
		priority
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (meeting_id) DO UPDATE
	SET day = EXCLUDED.day,
		kind = EXCLUDED.kind,
		status = EXCLUDED.status,
		start_clock = EXCLUDED.start_clock,
		end_clock = EXCLUDED.end_clock,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		duration_minutes = EXCLUDED.duration_minutes,
		priority = EXCLUDED.priority;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed meetings: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range data {
		var startClock, endClock any
		if m.StartClock != "" {
			startClock = m.StartClock
		}
		if m.EndClock != "" {
			endClock = m.EndClock
		}

		if _, err := stmt.Exec(
			m.MeetingID, m.Day, m.Kind, m.Status,
			startClock, endClock, m.Lat, m.Lon,
			m.DurationMinutes, m.Priority,
		); err != nil {
			return fmt.Errorf("seed meetings: insert meeting_id=%q: %w", m.MeetingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed meetings: commit tx: %w", err)
	}

	return nil
}
