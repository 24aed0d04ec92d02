package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// inflightTTL bounds how long a submission can hold the flag; a crashed
// process must not lock a customer out of checkout indefinitely.
const inflightTTL = 2 * time.Minute

// InflightGuard is the server-side rendition of the checkout form's
// processing flag: a best-effort lock keyed by customer email that blocks
// double submission while a chain is running.
// Key format: checkout:inflight:<email>
type InflightGuard struct {
	client *redis.Client
}

// NewInflightGuard creates an InflightGuard wrapping the given Redis client.
func NewInflightGuard(client *redis.Client) *InflightGuard {
	return &InflightGuard{client: client}
}

// Acquire attempts to take the flag. It returns false when another
// submission for the same key is already in flight.
func (g *InflightGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", inflightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("inflight acquire: %w", err)
	}
	return ok, nil
}

// Release clears the flag. Errors are swallowed: the TTL is the backstop.
func (g *InflightGuard) Release(ctx context.Context, key string) {
	_ = g.client.Del(ctx, g.key(key)).Err()
}

func (g *InflightGuard) key(k string) string {
	return "checkout:inflight:" + k
}
