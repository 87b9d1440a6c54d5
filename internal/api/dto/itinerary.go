package dto

type ItineraryRequest struct {
	Day string `json:"day"`
	// Optional "HH:MM" override for the start of the planning day.
	DayStart string `json:"day_start"`
}

type ItineraryStopResponse struct {
	MeetingID   string   `json:"meeting_id"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	WasFlexible bool     `json:"was_flexible"`
}

type ItineraryResponse struct {
	Day                string                  `json:"day"`
	Stops              []ItineraryStopResponse `json:"stops"`
	TotalDistanceMiles float64                 `json:"total_distance_miles"`
	TotalTravelMinutes int64                   `json:"total_travel_minutes"`
	FromCache          bool                    `json:"from_cache"`
}
