package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = 24 * time.Hour

// OrderDedup records idempotency keys of placed orders in Redis.
// Key format: order:dedup:<username>:<idempotency_key>
type OrderDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOrderDedup creates an OrderDedup wrapping the given Redis client. A
// non-positive ttl falls back to 24h.
func NewOrderDedup(client *redis.Client, ttl time.Duration) *OrderDedup {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &OrderDedup{client: client, ttl: ttl}
}

// Claim atomically reserves the key for username. It reports false when the
// key was already claimed.
func (d *OrderDedup) Claim(ctx context.Context, username, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(username, key), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("order dedup claim: %w", err)
	}
	return ok, nil
}

// Release drops a claim so the key can be retried, used when the order
// insert behind it failed.
func (d *OrderDedup) Release(ctx context.Context, username, key string) error {
	if err := d.client.Del(ctx, d.key(username, key)).Err(); err != nil {
		return fmt.Errorf("order dedup release: %w", err)
	}
	return nil
}

func (d *OrderDedup) key(username, key string) string {
	return fmt.Sprintf("order:dedup:%s:%s", username, key)
}

// Ping reports whether the backing Redis is reachable.
func (d *OrderDedup) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
