package service

import (
	"context"
	"errors"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/emrgen/tinytweet/internal/validate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewTweetService creates a new TweetService.
func NewTweetService(store store.Store) *TweetService {
	return &TweetService{
		store: store,
	}
}

// TweetService implements the tweet lifecycle: create, read, delete.
// Tweets are never updated.
type TweetService struct {
	store store.Store
}

// CreateTweet validates the body, assigns a fresh ID and persists the tweet.
func (t *TweetService) CreateTweet(ctx context.Context, authorID, content string) (*model.Tweet, error) {
	if fe := validate.TweetContent(content); fe != nil {
		return nil, validate.Errors{*fe}
	}

	tweet := &model.Tweet{
		ID:      uuid.New().String(),
		UserID:  authorID,
		Content: content,
	}

	if err := t.store.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}

	logrus.Infof("user %s created tweet %s", authorID, tweet.ID)

	return tweet, nil
}

// GetTweet retrieves a tweet by ID.
func (t *TweetService) GetTweet(ctx context.Context, id string) (*model.Tweet, error) {
	tweet, err := t.store.GetTweet(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTweetNotFound
	}
	if err != nil {
		return nil, err
	}

	return tweet, nil
}

// ListTweets retrieves all tweets, newest first.
func (t *TweetService) ListTweets(ctx context.Context) ([]*model.Tweet, error) {
	return t.store.ListTweets(ctx)
}

// ListUserTweets retrieves the tweets of a user, newest first.
func (t *TweetService) ListUserTweets(ctx context.Context, userID string) ([]*model.Tweet, error) {
	return t.store.ListUserTweets(ctx, userID)
}

// DeleteTweet deletes a tweet after checking the acting user owns it.
func (t *TweetService) DeleteTweet(ctx context.Context, actorID, tweetID string) error {
	return t.store.Transaction(ctx, func(tx store.Store) error {
		tweet, err := tx.GetTweet(ctx, tweetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTweetNotFound
		}
		if err != nil {
			return err
		}

		if tweet.UserID != actorID {
			return ErrNotTweetOwner
		}

		if err := tx.DeleteTweet(ctx, tweetID); err != nil {
			return err
		}

		logrus.Infof("user %s deleted tweet %s", actorID, tweetID)
		return nil
	})
}
