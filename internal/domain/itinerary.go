package domain

// Half-open interval [Start, End) in minutes since midnight.
//
// Values are not wrapped modulo 1440: a placement computed past midnight
// keeps its raw minute offset and renders as an out-of-range clock string.
type TimeWindow struct {
	Start int64
	End   int64
}

// Represents a single visit in an optimized itinerary.
// The window equals the input window for fixed meetings and is computed
// by the optimizer for flexible ones.
type ItineraryStop struct {
	MeetingID   string
	Window      TimeWindow
	Location    *Location
	WasFlexible bool
}

// Represents the optimized visiting order for a single day.
// An ItineraryPlan is the output of the optimizer and describes the stop
// sequence along with aggregate distance and travel-time metrics.
// It is immutable planning data and contains no side effects.
type ItineraryPlan struct {
	Stops              []ItineraryStop
	TotalDistanceMiles float64
	TotalTravelMinutes int64
}
