package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"meeting-itinerary-service/internal/domain"
	"meeting-itinerary-service/internal/platform/obs"
)

// Redis-backed cache for computed itinerary plans.
//
// The optimizer is deterministic for a given candidate snapshot, so a plan
// keyed by day stays valid until that day's meetings change. Writers must
// invalidate the day key after any meeting mutation (ApplyWindows does).
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

func planKey(key string) string { return "itinerary:plan:" + key }

// Fetch a cached plan. A missing key is a miss, not an error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.ItineraryPlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, planKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: redis get %q: %w", key, err)
	}

	var plan domain.ItineraryPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode plan for %q: %w", key, err)
	}

	return &plan, true, nil
}

// Store a computed plan under the given key.
func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.ItineraryPlan) (err error) {
	defer obs.Time(ctx, "plan.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}
	if key == "" {
		return errors.New("insert plan cache: key must not be empty")
	}
	if plan == nil {
		return errors.New("insert plan cache: plan must not be nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache: encode plan for %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, planKey(key), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert plan cache: redis set %q: %w", key, err)
	}

	return nil
}

// Drop the cached plan for the given key, if any.
func (c *RedisPlanCache) Invalidate(ctx context.Context, key string) error {
	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}
	if key == "" {
		return errors.New("invalidate plan cache: key must not be empty")
	}

	if err := c.Client.Del(ctx, planKey(key)).Err(); err != nil {
		return fmt.Errorf("invalidate plan cache: redis del %q: %w", key, err)
	}

	return nil
}
