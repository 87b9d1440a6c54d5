package services

// GapScorer ranks a flexible candidate for insertion at the current point
// of the walk. distFromCurrent is the travel distance in miles from the
// anchor location to the candidate; distToNext is from the candidate to the
// next fixed meeting. Lower scores win; ties go to the earlier candidate.
type GapScorer func(distFromCurrent, distToNext float64) float64

// WeightedGapScore is the default scorer. The cost of leaving toward the
// next obligation is discounted relative to the cost of getting to the
// candidate now. The 0.5 weight is a heuristic bias tuned for plausible
// day plans, not a derived constant.
func WeightedGapScore(distFromCurrent, distToNext float64) float64 {
	return distFromCurrent + 0.5*distToNext
}
