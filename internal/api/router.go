package api

import (
	"net/http"

	"meeting-itinerary-service/internal/api/handlers"
	"meeting-itinerary-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). planCache may be nil when caching is disabled.
func NewRouter(repo ports.MeetingRepository, planCache ports.PlanCache) http.Handler {
	mux := http.NewServeMux()

	meetingHandler := &handlers.MeetingHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{Repo: repo, Cache: planCache}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/meetings", meetingHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)
	mux.HandleFunc("/itineraries/apply", itineraryHandler.Apply)

	return loggingMiddleware(mux)
}
