package service

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/tinytweet/internal/cache"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const likeCountTTL = 10 * time.Minute

// LikeResult carries everything a caller needs to refresh a like widget.
type LikeResult struct {
	TweetID   string `json:"tweet_id"`
	LikeCount int64  `json:"like_count"`
	Liked     bool   `json:"liked"`
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(store store.Store, cache cache.EngagementCache) *EngagementService {
	return &EngagementService{
		store: store,
		cache: cache,
	}
}

// EngagementService implements the like/unlike mutations.
type EngagementService struct {
	store store.Store
	cache cache.EngagementCache
}

// Like makes the acting user like the tweet. Liking an already liked tweet
// is a success; the like count never moves past one edge per user.
func (e *EngagementService) Like(ctx context.Context, actorID, tweetID string) (*LikeResult, error) {
	var result *LikeResult

	err := e.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetTweet(ctx, tweetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTweetNotFound
			}
			return err
		}

		created, err := tx.CreateLike(ctx, actorID, tweetID)
		if err != nil {
			return err
		}

		count, err := tx.CountLikes(ctx, tweetID)
		if err != nil {
			return err
		}

		if created {
			logrus.Infof("user %s liked tweet %s", actorID, tweetID)
		}

		result = &LikeResult{TweetID: tweetID, LikeCount: count, Liked: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.refreshCount(ctx, tweetID, result.LikeCount)

	return result, nil
}

// Unlike removes the acting user's like from the tweet. Unliking a tweet
// that was never liked is a no-op success.
func (e *EngagementService) Unlike(ctx context.Context, actorID, tweetID string) (*LikeResult, error) {
	var result *LikeResult

	err := e.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetTweet(ctx, tweetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTweetNotFound
			}
			return err
		}

		removed, err := tx.DeleteLike(ctx, actorID, tweetID)
		if err != nil {
			return err
		}

		count, err := tx.CountLikes(ctx, tweetID)
		if err != nil {
			return err
		}

		if removed {
			logrus.Infof("user %s unliked tweet %s", actorID, tweetID)
		}

		result = &LikeResult{TweetID: tweetID, LikeCount: count, Liked: false}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.refreshCount(ctx, tweetID, result.LikeCount)

	return result, nil
}

// LikeCount returns the like count of a tweet, served from the cache when
// warm and recomputed from the store on a miss.
func (e *EngagementService) LikeCount(ctx context.Context, tweetID string) (int64, error) {
	count, err := e.cache.GetLikeCount(ctx, tweetID)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logrus.Warnf("like count cache read failed for tweet %s: %v", tweetID, err)
	}

	count, err = e.store.CountLikes(ctx, tweetID)
	if err != nil {
		return 0, err
	}

	e.refreshCount(ctx, tweetID, count)

	return count, nil
}

// HasLiked reports whether the user likes the tweet.
func (e *EngagementService) HasLiked(ctx context.Context, actorID, tweetID string) (bool, error) {
	return e.store.LikeExists(ctx, actorID, tweetID)
}

func (e *EngagementService) refreshCount(ctx context.Context, tweetID string, count int64) {
	if err := e.cache.SetLikeCount(ctx, tweetID, count, likeCountTTL); err != nil {
		logrus.Warnf("like count cache write failed for tweet %s: %v", tweetID, err)
	}
}
