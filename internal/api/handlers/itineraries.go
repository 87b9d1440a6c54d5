package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"meeting-itinerary-service/internal/api/dto"
	"meeting-itinerary-service/internal/domain"
	"meeting-itinerary-service/internal/ports"
	"meeting-itinerary-service/internal/services"
)

// ItineraryHandler computes and applies optimized day itineraries.
type ItineraryHandler struct {
	Repo  ports.MeetingRepository
	Cache ports.PlanCache
}

// Plan loads the day's eligible meetings, runs the optimizer, and returns
// the ordered plan. Default-day-start runs are served from the plan cache
// when possible; a day-start override always recomputes, since the cache is
// keyed by day alone.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	dayStart, ok := h.parseDayStart(w, r, req.DayStart)
	if !ok {
		return
	}

	if h.Cache != nil && req.DayStart == "" {
		plan, hit, err := h.Cache.Get(r.Context(), req.Day)
		if err != nil {
			// Cache trouble degrades to a recompute, never a failed request.
			log.Printf("plan cache get failed: day=%s err=%v", req.Day, err)
		}
		if hit {
			writeJSON(w, r, http.StatusOK, toItineraryResponse(req.Day, plan, true))
			return
		}
	}

	plan, ok := h.optimize(w, r, req.Day, dayStart)
	if !ok {
		return
	}

	if h.Cache != nil && req.DayStart == "" {
		if err := h.Cache.Put(r.Context(), req.Day, plan); err != nil {
			log.Printf("plan cache put failed: day=%s err=%v", req.Day, err)
		}
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(req.Day, plan, false))
}

// Apply runs the optimizer and persists the computed windows onto the
// day's flexible meetings, fixing them in place for future runs.
func (h *ItineraryHandler) Apply(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	dayStart, ok := h.parseDayStart(w, r, req.DayStart)
	if !ok {
		return
	}

	plan, ok := h.optimize(w, r, req.Day, dayStart)
	if !ok {
		return
	}

	if err := h.Repo.ApplyWindows(r.Context(), req.Day, plan.Stops); err != nil {
		log.Printf("apply windows failed: day=%s err=%v", req.Day, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// The stored meetings changed; any cached plan for the day is stale.
	if h.Cache != nil {
		if err := h.Cache.Invalidate(r.Context(), req.Day); err != nil {
			log.Printf("plan cache invalidate failed: day=%s err=%v", req.Day, err)
		}
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(req.Day, plan, false))
}

func (h *ItineraryHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (dto.ItineraryRequest, bool) {
	var req dto.ItineraryRequest

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return req, false
	}

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return req, false
	}

	req.Day = strings.TrimSpace(req.Day)
	if req.Day == "" {
		writeError(w, r, http.StatusBadRequest, "day is required")
		return req, false
	}

	return req, true
}

func (h *ItineraryHandler) parseDayStart(w http.ResponseWriter, r *http.Request, clock string) (int64, bool) {
	if clock == "" {
		return 0, true
	}

	minutes, err := domain.ParseClock(clock)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "day_start must be HH:MM")
		return 0, false
	}

	return minutes, true
}

func (h *ItineraryHandler) optimize(
	w http.ResponseWriter,
	r *http.Request,
	day string,
	dayStart int64,
) (*domain.ItineraryPlan, bool) {
	candidates, err := h.Repo.ListEligibleMeetings(r.Context(), day)
	if err != nil {
		log.Printf("list meetings failed: day=%s err=%v", day, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	plan, err := services.OptimizeItinerary(r.Context(), candidates, services.OptimizeOptions{
		DayStartMinutes: dayStart,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeFormat) {
			// A stored meeting carries a malformed window; surface it
			// instead of planning around a misread time.
			log.Printf("optimize failed: day=%s err=%v", day, err)
			writeError(w, r, http.StatusUnprocessableEntity, "a meeting has an invalid time window")
			return nil, false
		}
		log.Printf("optimize failed: day=%s err=%v", day, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	return plan, true
}

func toItineraryResponse(day string, plan *domain.ItineraryPlan, fromCache bool) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		Day:                day,
		Stops:              make([]dto.ItineraryStopResponse, 0, len(plan.Stops)),
		TotalDistanceMiles: plan.TotalDistanceMiles,
		TotalTravelMinutes: plan.TotalTravelMinutes,
		FromCache:          fromCache,
	}

	for _, s := range plan.Stops {
		stop := dto.ItineraryStopResponse{
			MeetingID:   s.MeetingID,
			Start:       domain.FormatClock(s.Window.Start),
			End:         domain.FormatClock(s.Window.End),
			WasFlexible: s.WasFlexible,
		}
		if s.Location != nil {
			lat, lon := s.Location.Lat, s.Location.Lon
			stop.Lat, stop.Lon = &lat, &lon
		}
		res.Stops = append(res.Stops, stop)
	}

	return res
}
