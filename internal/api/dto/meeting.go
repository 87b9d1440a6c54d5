package dto

type MeetingResponse struct {
	MeetingID       string   `json:"meeting_id"`
	StartClock      string   `json:"start_clock,omitempty"`
	EndClock        string   `json:"end_clock,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lon             *float64 `json:"lon,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Priority        int      `json:"priority"`
}

type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}
