package service

import (
	"context"
	"errors"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/store"
	"gorm.io/gorm"
)

// UserPage is the read-only projection backing a profile page.
type UserPage struct {
	User          *model.User    `json:"user"`
	Tweets        []*model.Tweet `json:"tweets"`
	FollowerCount int64          `json:"follower_count"`
	FolloweeCount int64          `json:"followee_count"`
	IsFollowed    bool           `json:"is_followed"`
}

// NewQueryService creates a new QueryService.
func NewQueryService(store store.Store) *QueryService {
	return &QueryService{
		store: store,
	}
}

// QueryService composes the stores into read-only projections for
// presentation. It never mutates.
type QueryService struct {
	store store.Store
}

// GetUserPage builds the profile projection of the user with the given
// handle, as seen by the viewer.
func (q *QueryService) GetUserPage(ctx context.Context, viewerID, username string) (*UserPage, error) {
	user, err := q.store.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	tweets, err := q.store.ListUserTweets(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	followerCount, err := q.store.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	followeeCount, err := q.store.CountFollowees(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowed := false
	if viewerID != "" && viewerID != user.ID {
		isFollowed, err = q.store.FollowExists(ctx, user.ID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	return &UserPage{
		User:          user,
		Tweets:        tweets,
		FollowerCount: followerCount,
		FolloweeCount: followeeCount,
		IsFollowed:    isFollowed,
	}, nil
}

// Followers lists the users following the user with the given handle.
func (q *QueryService) Followers(ctx context.Context, username string) ([]*model.User, error) {
	user, err := q.resolve(ctx, username)
	if err != nil {
		return nil, err
	}

	return q.store.ListFollowers(ctx, user.ID)
}

// Followees lists the users the user with the given handle follows.
func (q *QueryService) Followees(ctx context.Context, username string) ([]*model.User, error) {
	user, err := q.resolve(ctx, username)
	if err != nil {
		return nil, err
	}

	return q.store.ListFollowees(ctx, user.ID)
}

// IsFollowing reports whether follower follows followee, both by handle.
func (q *QueryService) IsFollowing(ctx context.Context, followerUsername, followeeUsername string) (bool, error) {
	follower, err := q.resolve(ctx, followerUsername)
	if err != nil {
		return false, err
	}

	followee, err := q.resolve(ctx, followeeUsername)
	if err != nil {
		return false, err
	}

	return q.store.FollowExists(ctx, followee.ID, follower.ID)
}

// Likers lists the users that like the tweet.
func (q *QueryService) Likers(ctx context.Context, tweetID string) ([]*model.User, error) {
	if _, err := q.store.GetTweet(ctx, tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}

	return q.store.ListLikers(ctx, tweetID)
}

func (q *QueryService) resolve(ctx context.Context, username string) (*model.User, error) {
	user, err := q.store.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
