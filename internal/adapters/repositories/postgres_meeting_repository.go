package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meeting-itinerary-service/internal/domain"
	"meeting-itinerary-service/internal/platform/obs"
)

// Postgres-backed implementation of the MeetingRepository port.
type PostgresMeetingRepository struct{ DB *sql.DB }

func NewPostgresMeetingRepository(db *sql.DB) *PostgresMeetingRepository {
	return &PostgresMeetingRepository{DB: db}
}

// Return the day's candidates eligible for optimization. Eligibility
// (in-person, not cancelled) is enforced here so the optimizer never has
// to re-check type or status.
func (r *PostgresMeetingRepository) ListEligibleMeetings(
	ctx context.Context,
	day string,
) (_ []*domain.MeetingCandidate, err error) {
	defer obs.Time(ctx, "meetings.ListEligible")(&err)

	if r.DB == nil {
		return nil, errors.New("meeting repository: DB is nil")
	}
	if day == "" {
		return nil, errors.New("list eligible meetings: day must not be empty")
	}

	query := `
	SELECT
		meeting_id,
		start_clock,
		end_clock,
		lat,
		lon,
		duration_minutes,
		priority
	FROM meetings
	WHERE day = $1
		AND kind = 'in-person'
		AND status <> 'cancelled'
	ORDER BY meeting_id;
	`
	rows, err := r.DB.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("list eligible meetings: query meetings table: %w", err)
	}
	defer rows.Close()

	meetings := make([]*domain.MeetingCandidate, 0, 32)
	for rows.Next() {
		var (
			id         string
			startClock sql.NullString
			endClock   sql.NullString
			lat, lon   sql.NullFloat64
			duration   int
			priority   int
		)
		if err := rows.Scan(&id, &startClock, &endClock, &lat, &lon, &duration, &priority); err != nil {
			return nil, fmt.Errorf("list eligible meetings: scan row: %w", err)
		}

		m := &domain.MeetingCandidate{
			ID:              id,
			StartClock:      startClock.String,
			EndClock:        endClock.String,
			DurationMinutes: duration,
			Priority:        priority,
		}
		if lat.Valid && lon.Valid {
			m.Location = &domain.Location{Lat: lat.Float64, Lon: lon.Float64}
		}
		meetings = append(meetings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list eligible meetings: row iteration: %w", err)
	}

	return meetings, nil
}

// Persist optimizer-computed windows onto the day's flexible meetings,
// converting them to fixed meetings for future runs. Fixed stops are
// skipped: their windows came from the store in the first place.
func (r *PostgresMeetingRepository) ApplyWindows(
	ctx context.Context,
	day string,
	stops []domain.ItineraryStop,
) (err error) {
	defer obs.Time(ctx, "meetings.ApplyWindows")(&err)

	if r.DB == nil {
		return errors.New("meeting repository: DB is nil")
	}
	if day == "" {
		return errors.New("apply windows: day must not be empty")
	}

	flexible := make([]domain.ItineraryStop, 0, len(stops))
	for _, s := range stops {
		if s.WasFlexible {
			flexible = append(flexible, s)
		}
	}
	if len(flexible) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("apply windows: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	UPDATE meetings
	SET start_clock = $1,
		end_clock = $2
	WHERE meeting_id = $3
		AND day = $4;
	`)
	if err != nil {
		return fmt.Errorf("apply windows: prepare update: %w", err)
	}
	defer stmt.Close()

	for _, s := range flexible {
		start := domain.FormatClock(s.Window.Start)
		end := domain.FormatClock(s.Window.End)
		if _, err := stmt.ExecContext(ctx, start, end, s.MeetingID, day); err != nil {
			return fmt.Errorf("apply windows: update meeting_id=%q: %w", s.MeetingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("apply windows: commit tx: %w", err)
	}

	return nil
}
