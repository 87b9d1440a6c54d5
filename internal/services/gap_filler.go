package services

import (
	"meeting-itinerary-service/internal/domain"
	"meeting-itinerary-service/internal/geo"
)

const (
	// Default visit length in minutes for a flexible meeting that does not
	// declare its own duration.
	defaultVisitMinutes = 60

	// A gap shorter than this is not worth inserting into.
	minGapMinutes = 30

	// Minutes reserved immediately before a fixed meeting. Insertions must
	// finish, travel included, this far ahead of the fixed start.
	fixedBufferMinutes = 15

	// 08:00, used to anchor the walk when no fixed meeting does.
	defaultDayStartMinutes = 480
)

// walkState carries the clock position and anchor location through the gap
// walk. States are values: each step returns a new one rather than mutating
// shared variables.
type walkState struct {
	now int64
	loc *domain.Location
}

// A flexible meeting with its computed visit window.
type placement struct {
	candidate *domain.MeetingCandidate
	window    domain.TimeWindow
}

func visitMinutes(c *domain.MeetingCandidate) int64 {
	if c.DurationMinutes > 0 {
		return int64(c.DurationMinutes)
	}
	return defaultVisitMinutes
}

// fillGap greedily inserts flexible meetings from pool into the time span
// [state.now, windowEnd], anchored at state.loc and heading toward nextLoc
// (the next fixed meeting's location, nil when unknown).
//
// Each round scores every unplaced candidate with a known location and
// picks the feasible one with the lowest score; strict less-than comparison
// means ties keep the earliest candidate in input order. A candidate is
// feasible when its visit plus travel in and travel onward all fit before
// windowEnd. The round repeats until nothing feasible remains.
//
// Candidates without coordinates are never inserted here; they fall through
// to the flexible-only router at the end of the day.
func fillGap(
	state walkState,
	pool []*domain.MeetingCandidate,
	windowEnd int64,
	nextLoc *domain.Location,
	score GapScorer,
) (walkState, []*domain.MeetingCandidate, []placement) {
	var placements []placement

	for len(pool) > 0 {
		bestIdx := -1
		var bestScore float64
		var bestTravel int64

		for i, c := range pool {
			if c.Location == nil {
				continue
			}

			distFromCurrent := 0.0
			if state.loc != nil {
				distFromCurrent = geo.DistanceMiles(*state.loc, *c.Location)
			}

			distToNext := 0.0
			if nextLoc != nil {
				distToNext = geo.DistanceMiles(*c.Location, *nextLoc)
			}

			travelIn := geo.TravelMinutes(distFromCurrent)
			travelOut := geo.TravelMinutes(distToNext)
			if state.now+travelIn+visitMinutes(c)+travelOut > windowEnd {
				continue
			}

			s := score(distFromCurrent, distToNext)
			if bestIdx == -1 || s < bestScore {
				bestIdx = i
				bestScore = s
				bestTravel = travelIn
			}
		}

		if bestIdx == -1 {
			break
		}

		c := pool[bestIdx]
		start := state.now + bestTravel
		end := start + visitMinutes(c)

		placements = append(placements, placement{
			candidate: c,
			window:    domain.TimeWindow{Start: start, End: end},
		})

		state = walkState{now: end, loc: c.Location}
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	return state, pool, placements
}
