package cache

import (
	"context"
	"time"
)

var _ EngagementCache = (*Nop)(nil)

// Nop is an always-miss cache for tests and redis-less runs.
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (n *Nop) GetLikeCount(ctx context.Context, tweetID string) (int64, error) {
	return 0, ErrCacheMiss
}

func (n *Nop) SetLikeCount(ctx context.Context, tweetID string, count int64, ttl time.Duration) error {
	return nil
}

func (n *Nop) DeleteLikeCount(ctx context.Context, tweetID string) error {
	return nil
}
