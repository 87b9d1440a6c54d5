package handlers

import (
	"log"
	"net/http"
	"strings"

	"meeting-itinerary-service/internal/api/dto"
	"meeting-itinerary-service/internal/ports"
)

// MeetingHandler exposes read-only meeting retrieval endpoints.
type MeetingHandler struct {
	Repo ports.MeetingRepository
}

func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	day := strings.TrimSpace(r.URL.Query().Get("day"))
	if day == "" {
		writeError(w, r, http.StatusBadRequest, "day is required")
		return
	}

	meetings, err := h.Repo.ListEligibleMeetings(r.Context(), day)
	if err != nil {
		log.Printf("list meetings failed: day=%s err=%v", day, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListMeetingsResponse{
		Meetings: make([]dto.MeetingResponse, 0, len(meetings)),
	}
	for _, m := range meetings {
		item := dto.MeetingResponse{
			MeetingID:       m.ID,
			StartClock:      m.StartClock,
			EndClock:        m.EndClock,
			DurationMinutes: m.DurationMinutes,
			Priority:        m.Priority,
		}
		if m.Location != nil {
			lat, lon := m.Location.Lat, m.Location.Lon
			item.Lat, item.Lon = &lat, &lon
		}
		res.Meetings = append(res.Meetings, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
