package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deskbook/desk_booking_app/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const availabilityKey = "cache:availability"

// RedisCache keeps a short-lived snapshot of the availability view so
// repeated reads do not rescan the ledger. The service treats it as
// optional; every method is safe to skip when redis is down.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to redis at addr and caches snapshots for ttl.
func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// GetAvailability returns the cached snapshot, or nil on a miss.
func (c *RedisCache) GetAvailability(ctx context.Context) ([]domain.DateAvailability, error) {
	data, err := c.client.Get(ctx, availabilityKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var snapshot []domain.DateAvailability
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SetAvailability stores the snapshot with the configured TTL.
func (c *RedisCache) SetAvailability(ctx context.Context, snapshot []domain.DateAvailability) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey, payload, c.ttl).Err()
}

// InvalidateAvailability drops the snapshot; called after every write.
func (c *RedisCache) InvalidateAvailability(ctx context.Context) error {
	return c.client.Del(ctx, availabilityKey).Err()
}
