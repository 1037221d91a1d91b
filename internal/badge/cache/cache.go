// Package cache provides a redis read-through cache for badge scores.
//
// Scores change only through administrator corrections, so a short TTL plus
// explicit invalidation on correction keeps reads consistent with the store.
// The cache is strictly an accelerator: a miss or a redis failure falls back
// to the store, never to an error for the caller.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	id "merit/pkg/domain"
)

const scoreKeyPrefix = "merit:badge:score:"

// ScoreCache caches badge scores in redis with TTL expiration.
type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache constructs a redis-backed score cache.
func NewScoreCache(client *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

// Get returns the cached score for a badge. The second return reports a hit;
// redis errors surface as misses with the error attached for logging.
func (c *ScoreCache) Get(ctx context.Context, badgeID id.BadgeID) (uint, bool, error) {
	if c == nil || c.client == nil {
		return 0, false, nil
	}
	val, err := c.client.Get(ctx, scoreKeyPrefix+badgeID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	score, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		// Corrupt entry: treat as a miss, let Set overwrite it.
		return 0, false, nil
	}
	return uint(score), true, nil
}

// Set stores a badge score with the configured TTL.
func (c *ScoreCache) Set(ctx context.Context, badgeID id.BadgeID, score uint) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, scoreKeyPrefix+badgeID.String(), strconv.FormatUint(uint64(score), 10), c.ttl).Err()
}

// Invalidate drops the cached score after a correction so the next read sees
// the corrected value.
func (c *ScoreCache) Invalidate(ctx context.Context, badgeID id.BadgeID) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, scoreKeyPrefix+badgeID.String()).Err()
}
