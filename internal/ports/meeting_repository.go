package ports

import (
	"context"

	"meeting-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving and updating meeting records.
type MeetingRepository interface {
	// Retrieve the candidates eligible for optimization on the given day
	// (ISO date string). The store filters to in-person, non-cancelled
	// meetings; the optimizer never re-checks type or status.
	ListEligibleMeetings(ctx context.Context, day string) ([]*domain.MeetingCandidate, error)

	// Persist optimizer-computed windows onto flexible meetings, converting
	// them to fixed meetings for future runs. Stops whose window equals the
	// stored one are left untouched.
	ApplyWindows(ctx context.Context, day string, stops []domain.ItineraryStop) error
}
