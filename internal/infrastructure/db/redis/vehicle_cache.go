package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// VehicleCache is a read-through cache for single-vehicle lookups.
// Key format: vehicle:<id>
type VehicleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVehicleCache wraps client; entries expire after ttl (5m when <= 0).
func NewVehicleCache(client *redis.Client, ttl time.Duration) *VehicleCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &VehicleCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a cache miss.
func (c *VehicleCache) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("vehicle cache get: %w", err)
	}

	var v domain.Vehicle
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("vehicle cache decode: %w", err)
	}
	return &v, nil
}

func (c *VehicleCache) Set(ctx context.Context, v *domain.Vehicle) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("vehicle cache encode: %w", err)
	}
	return c.client.Set(ctx, key(v.ID), raw, c.ttl).Err()
}

func (c *VehicleCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, key(id)).Err()
}

func key(id int64) string {
	return fmt.Sprintf("vehicle:%d", id)
}
