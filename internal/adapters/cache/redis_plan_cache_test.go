package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"meeting-itinerary-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisPlanCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCache(client, time.Hour)
}

func testPlan() *domain.ItineraryPlan {
	return &domain.ItineraryPlan{
		Stops: []domain.ItineraryStop{
			{
				MeetingID: "m-1",
				Window:    domain.TimeWindow{Start: 480, End: 540},
				Location:  &domain.Location{Lat: 37.78, Lon: -122.41},
			},
			{
				MeetingID:   "m-2",
				Window:      domain.TimeWindow{Start: 600, End: 660},
				WasFlexible: true,
			},
		},
		TotalDistanceMiles: 0.88,
		TotalTravelMinutes: 2,
	}
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "2026-08-26", testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "2026-08-26")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, testPlan()) {
		t.Errorf("cached plan differs:\ngot  %+v\nwant %+v", got, testPlan())
	}
}

func TestRedisPlanCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "2026-08-27")
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if ok {
		t.Error("expected cache miss")
	}
}

func TestRedisPlanCacheInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "2026-08-26", testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Invalidate(ctx, "2026-08-26"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := c.Get(ctx, "2026-08-26")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected miss after invalidation")
	}
}

func TestRedisPlanCacheEmptyKey(t *testing.T) {
	c := newTestCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Error("Get with empty key must error")
	}
	if err := c.Put(context.Background(), "", testPlan()); err == nil {
		t.Error("Put with empty key must error")
	}
}
