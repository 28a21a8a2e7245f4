package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore is a fixed-window counter usable as an echo RateLimiterStore.
type RateLimitStore struct {
	client redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

func NewRateLimitStore(client redis.Cmdable, prefix string, limit int, window time.Duration) *RateLimitStore {
	return &RateLimitStore{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow fails open when Redis is unavailable. Every hit re-asserts the window
// with EXPIRE NX, so a key that lost its TTL heals on the next request.
func (s *RateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := s.prefix + identifier
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, s.window)
		return nil
	})
	if err != nil {
		log.Printf("[RateLimit] %s: %v", key, err)
		return true, nil
	}
	return incr.Val() <= int64(s.limit), nil
}
