package services

import (
	"fmt"
	"slices"

	"meeting-itinerary-service/internal/domain"
)

// A meeting candidate paired with its parsed, immovable time window.
type FixedMeeting struct {
	Candidate *domain.MeetingCandidate
	Window    domain.TimeWindow
}

// PartitionCandidates splits a day's candidates into fixed meetings sorted
// ascending by start minute and flexible meetings in input order.
//
// A candidate is fixed if and only if it declares a concrete time window.
// The sort is stable so equal start times keep their input order. Windows
// are parsed here; a malformed clock string aborts the whole partition
// rather than silently defaulting, since a misread meeting time is worse
// than no plan at all.
func PartitionCandidates(
	candidates []*domain.MeetingCandidate,
) ([]FixedMeeting, []*domain.MeetingCandidate, error) {
	fixed := make([]FixedMeeting, 0, len(candidates))
	flexible := make([]*domain.MeetingCandidate, 0, len(candidates))

	for _, c := range candidates {
		if !c.IsFixed() {
			flexible = append(flexible, c)
			continue
		}

		start, err := domain.ParseClock(c.StartClock)
		if err != nil {
			return nil, nil, fmt.Errorf("partition candidates: meeting %q start: %w", c.ID, err)
		}

		end, err := domain.ParseClock(c.EndClock)
		if err != nil {
			return nil, nil, fmt.Errorf("partition candidates: meeting %q end: %w", c.ID, err)
		}

		fixed = append(fixed, FixedMeeting{
			Candidate: c,
			Window:    domain.TimeWindow{Start: start, End: end},
		})
	}

	slices.SortStableFunc(fixed, func(a, b FixedMeeting) int {
		switch {
		case a.Window.Start < b.Window.Start:
			return -1
		case a.Window.Start > b.Window.Start:
			return 1
		default:
			return 0
		}
	})

	return fixed, flexible, nil
}
