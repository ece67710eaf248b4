package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when the requested count is not cached.
var ErrCacheMiss = errors.New("cache miss")

// EngagementCache caches like counts per tweet. The store count is
// authoritative; the cache is set after a read and invalidated on mutation.
type EngagementCache interface {
	// GetLikeCount gets the cached like count of a tweet.
	GetLikeCount(ctx context.Context, tweetID string) (int64, error)
	// SetLikeCount caches the like count of a tweet.
	SetLikeCount(ctx context.Context, tweetID string, count int64, ttl time.Duration) error
	// DeleteLikeCount invalidates the cached like count of a tweet.
	DeleteLikeCount(ctx context.Context, tweetID string) error
}
