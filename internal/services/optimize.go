package services

import (
	"context"
	"fmt"

	"meeting-itinerary-service/internal/domain"
	"meeting-itinerary-service/internal/geo"
	"meeting-itinerary-service/internal/platform/obs"
)

// Options for a single optimization run.
type OptimizeOptions struct {
	// Minutes since midnight at which the day begins; used to anchor the
	// walk when no fixed meeting does. Zero or negative means 08:00.
	DayStartMinutes int64

	// Scorer for gap insertions. Nil means WeightedGapScore.
	Scorer GapScorer
}

// OptimizeItinerary builds a single ordered visiting sequence for a day's
// in-person meetings.
//
// Fixed meetings keep their windows untouched and appear in chronological
// order. Flexible meetings are greedily inserted into the gaps between them
// where time and geography allow, and whatever remains is routed
// nearest-neighbor after the last fixed meeting. The result reports total
// great-circle travel distance and the derived travel time.
//
// The call is a pure function of its inputs: it performs no I/O, holds no
// state across calls, and returns identical plans for identical inputs.
// Overlapping fixed meetings are passed through unchanged; the optimizer
// does not validate or repair the caller's calendar.
func OptimizeItinerary(
	ctx context.Context,
	candidates []*domain.MeetingCandidate,
	opts OptimizeOptions,
) (_ *domain.ItineraryPlan, err error) {
	defer obs.Time(ctx, "services.OptimizeItinerary")(&err)

	dayStart := opts.DayStartMinutes
	if dayStart <= 0 {
		dayStart = defaultDayStartMinutes
	}

	score := opts.Scorer
	if score == nil {
		score = WeightedGapScore
	}

	if len(candidates) == 0 {
		return &domain.ItineraryPlan{Stops: []domain.ItineraryStop{}}, nil
	}

	fixed, pool, err := PartitionCandidates(candidates)
	if err != nil {
		return nil, fmt.Errorf("optimize itinerary: %w", err)
	}

	state := walkState{now: dayStart}
	stops := make([]domain.ItineraryStop, 0, len(candidates))

	for _, f := range fixed {
		// Insert into the gap only when it is worth the detour and there is
		// anything left to insert.
		if f.Window.Start-state.now > minGapMinutes && len(pool) > 0 {
			windowEnd := f.Window.Start - fixedBufferMinutes

			var placements []placement
			state, pool, placements = fillGap(state, pool, windowEnd, f.Candidate.Location, score)
			stops = appendPlacements(stops, placements)
		}

		stops = append(stops, domain.ItineraryStop{
			MeetingID: f.Candidate.ID,
			Window:    f.Window,
			Location:  f.Candidate.Location,
		})
		state = walkState{now: f.Window.End, loc: f.Candidate.Location}
	}

	if len(pool) > 0 {
		if len(fixed) > 0 {
			// Leftovers start no earlier than the buffer after the last
			// fixed meeting.
			state = walkState{now: state.now + fixedBufferMinutes, loc: state.loc}
		}

		var placements []placement
		state, placements = routeFlexible(state, pool)
		stops = appendPlacements(stops, placements)
	}

	plan := &domain.ItineraryPlan{Stops: stops}
	plan.TotalDistanceMiles = totalDistance(stops)
	plan.TotalTravelMinutes = geo.TravelMinutes(plan.TotalDistanceMiles)

	return plan, nil
}

func appendPlacements(stops []domain.ItineraryStop, placements []placement) []domain.ItineraryStop {
	for _, p := range placements {
		stops = append(stops, domain.ItineraryStop{
			MeetingID:   p.candidate.ID,
			Window:      p.window,
			Location:    p.candidate.Location,
			WasFlexible: true,
		})
	}
	return stops
}

// Sum of great-circle legs between consecutive stops. A leg touching a stop
// without coordinates contributes zero rather than failing the plan.
func totalDistance(stops []domain.ItineraryStop) float64 {
	total := 0.0
	for i := 1; i < len(stops); i++ {
		prev, cur := stops[i-1].Location, stops[i].Location
		if prev == nil || cur == nil {
			continue
		}
		total += geo.DistanceMiles(*prev, *cur)
	}
	return total
}
