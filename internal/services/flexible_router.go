package services

import (
	"meeting-itinerary-service/internal/domain"
	"meeting-itinerary-service/internal/geo"
)

// routeFlexible orders the remaining flexible meetings with a greedy
// nearest-neighbor walk starting from state.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (e.g., TSP solvers); determinism
// and simplicity win over optimality. When the state has no anchor
// location, the first located candidate in input order seeds the walk at
// zero travel cost. Candidates without coordinates are appended afterwards
// in input order, each leg costing zero travel, so missing geography never
// drops a meeting from the plan.
func routeFlexible(state walkState, pool []*domain.MeetingCandidate) (walkState, []placement) {
	located := make([]*domain.MeetingCandidate, 0, len(pool))
	unlocated := make([]*domain.MeetingCandidate, 0, len(pool))
	for _, c := range pool {
		if c.Location != nil {
			located = append(located, c)
		} else {
			unlocated = append(unlocated, c)
		}
	}

	var placements []placement

	for len(located) > 0 {
		bestIdx := 0
		var bestTravel int64

		if state.loc != nil {
			bestIdx = -1
			bestDist := 0.0
			// Select next stop by minimum travel distance (greedy step);
			// strict less-than keeps the earlier candidate on ties.
			for i, c := range located {
				d := geo.DistanceMiles(*state.loc, *c.Location)
				if bestIdx == -1 || d < bestDist {
					bestIdx = i
					bestDist = d
				}
			}
			bestTravel = geo.TravelMinutes(bestDist)
		}

		c := located[bestIdx]
		start := state.now + bestTravel
		end := start + visitMinutes(c)

		placements = append(placements, placement{
			candidate: c,
			window:    domain.TimeWindow{Start: start, End: end},
		})

		state = walkState{now: end, loc: c.Location}
		located = append(located[:bestIdx], located[bestIdx+1:]...)
	}

	for _, c := range unlocated {
		start := state.now
		end := start + visitMinutes(c)

		placements = append(placements, placement{
			candidate: c,
			window:    domain.TimeWindow{Start: start, End: end},
		})

		// Anchor location is unchanged: an unknown stop contributes zero
		// travel and cannot re-anchor the walk.
		state = walkState{now: end, loc: state.loc}
	}

	return state, placements
}
