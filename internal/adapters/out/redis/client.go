// Package redis contains the outbound Redis adapters: the pub/sub event
// publisher, the time-windowed per-order event log and the best-effort
// stats counters.
package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client from a URL in the format
// redis://[:password@]host[:port][/database].
func NewClient(redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return goredis.NewClient(opts), nil
}
