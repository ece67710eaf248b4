package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const likeCountKeyPrefix = "tweet:likes:"

var _ EngagementCache = (*Redis)(nil)

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &Redis{client: client}, nil
}

func likeCountKey(tweetID string) string {
	return fmt.Sprintf("%s%s", likeCountKeyPrefix, tweetID)
}

func (r *Redis) GetLikeCount(ctx context.Context, tweetID string) (int64, error) {
	count, err := r.client.Get(ctx, likeCountKey(tweetID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Redis) SetLikeCount(ctx context.Context, tweetID string, count int64, ttl time.Duration) error {
	return r.client.Set(ctx, likeCountKey(tweetID), count, ttl).Err()
}

func (r *Redis) DeleteLikeCount(ctx context.Context, tweetID string) error {
	return r.client.Del(ctx, likeCountKey(tweetID)).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
