package domain

// Represents a single in-person meeting eligible for itinerary planning.
//
// A candidate is "fixed" when it declares both a StartClock and an EndClock
// ("HH:MM" wall-clock strings); otherwise it is "flexible" and the optimizer
// chooses its placement. Location may be nil when no coordinates are known.
// Callers are responsible for supplying only in-person, non-cancelled
// meetings; the optimizer does not filter by type or status.
type MeetingCandidate struct {
	ID         string
	StartClock string
	EndClock   string
	Location   *Location
	// Nominal visit length in minutes, used only for flexible placement.
	// Zero or negative means the 60-minute default applies.
	DurationMinutes int
	// Passed through unchanged for caller use; the optimizer ignores it.
	Priority int
}

// Report whether the candidate declares a concrete time window.
func (m *MeetingCandidate) IsFixed() bool {
	return m.StartClock != "" && m.EndClock != ""
}
