package ports

import (
	"context"

	"meeting-itinerary-service/internal/domain"
)

// Port: a cache of computed itinerary plans keyed by day.
//
// The optimizer is deterministic for a given candidate snapshot, so a plan
// stays valid until the day's meetings change. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
type PlanCache interface {
	Get(ctx context.Context, key string) (*domain.ItineraryPlan, bool, error)
	Put(ctx context.Context, key string, plan *domain.ItineraryPlan) error
	Invalidate(ctx context.Context, key string) error
}
