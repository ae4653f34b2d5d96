package data

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMemberCountCache caches room member counts in Redis. Counts are
// display data for room summaries only; authorization always queries the
// database directly.
type RedisMemberCountCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisMemberCountCache creates a new RedisMemberCountCache with the given Redis client.
func NewRedisMemberCountCache(client redis.UniversalClient) *RedisMemberCountCache {
	return &RedisMemberCountCache{client: client, prefix: "room:member_count:"}
}

// Get retrieves a cached member count. The second return value reports
// whether the key was present.
func (c *RedisMemberCountCache) Get(ctx context.Context, roomID string) (int, bool, error) {
	if roomID == "" {
		return 0, false, errors.New("room id cannot be empty")
	}

	val, err := c.client.Get(ctx, c.prefix+roomID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis get: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		// Unparseable entries are treated as a miss; the caller will
		// overwrite them.
		return 0, false, nil
	}
	return count, true, nil
}

// Set stores a member count with the given TTL.
func (c *RedisMemberCountCache) Set(ctx context.Context, roomID string, count int, ttl time.Duration) error {
	if roomID == "" {
		return errors.New("room id cannot be empty")
	}
	return c.client.Set(ctx, c.prefix+roomID, strconv.Itoa(count), ttl).Err()
}

// Invalidate removes a cached count after a membership change.
func (c *RedisMemberCountCache) Invalidate(ctx context.Context, roomID string) error {
	if roomID == "" {
		return errors.New("room id cannot be empty")
	}
	return c.client.Del(ctx, c.prefix+roomID).Err()
}
