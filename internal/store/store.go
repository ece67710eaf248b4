package store

import (
	"context"
	"time"

	"github.com/emrgen/tinytweet/internal/model"
)

type Store interface {
	UserStore
	FollowStore
	TweetStore
	LikeStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type UserStore interface {
	// CreateUser creates a new user.
	CreateUser(ctx context.Context, user *model.User) error
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id string) (*model.User, error)
	// GetUserByUsername retrieves a user by handle.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*model.User, error)
	// SetUserActive toggles the active flag of a user.
	SetUserActive(ctx context.Context, id string, active bool) error
}

type FollowStore interface {
	// FollowExists reports whether the follower follows the followee.
	FollowExists(ctx context.Context, followeeID, followerID string) (bool, error)
	// CreateFollow creates a follow edge. It fails with ErrAlreadyFollowing
	// when the edge is already present and ErrSelfFollow on a self-edge.
	CreateFollow(ctx context.Context, followeeID, followerID string) error
	// DeleteFollow removes a follow edge, reporting whether a row was removed.
	DeleteFollow(ctx context.Context, followeeID, followerID string) (bool, error)
	// ListFollowers retrieves the users following the given user.
	ListFollowers(ctx context.Context, userID string) ([]*model.User, error)
	// ListFollowees retrieves the users the given user follows.
	ListFollowees(ctx context.Context, userID string) ([]*model.User, error)
	// CountFollowers counts the users following the given user.
	CountFollowers(ctx context.Context, userID string) (int64, error)
	// CountFollowees counts the users the given user follows.
	CountFollowees(ctx context.Context, userID string) (int64, error)
}

type TweetStore interface {
	// CreateTweet creates a new tweet.
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	// GetTweet retrieves a tweet by ID.
	GetTweet(ctx context.Context, id string) (*model.Tweet, error)
	// ListTweets retrieves all tweets, newest first.
	ListTweets(ctx context.Context) ([]*model.Tweet, error)
	// ListUserTweets retrieves the tweets of a user, newest first.
	ListUserTweets(ctx context.Context, userID string) ([]*model.Tweet, error)
	// DeleteTweet deletes a tweet by ID.
	DeleteTweet(ctx context.Context, id string) error
}

type LikeStore interface {
	// CreateLike creates a like edge unless one is already present,
	// reporting whether a new edge was created.
	CreateLike(ctx context.Context, userID, tweetID string) (bool, error)
	// DeleteLike removes a like edge, reporting whether a row was removed.
	DeleteLike(ctx context.Context, userID, tweetID string) (bool, error)
	// LikeExists reports whether the user likes the tweet.
	LikeExists(ctx context.Context, userID, tweetID string) (bool, error)
	// CountLikes counts the likes of a tweet.
	CountLikes(ctx context.Context, tweetID string) (int64, error)
	// ListLikers retrieves the users that like the tweet.
	ListLikers(ctx context.Context, tweetID string) ([]*model.User, error)
	// ListRecentlyLikedTweetIDs retrieves the IDs of tweets with like
	// activity since the given time.
	ListRecentlyLikedTweetIDs(ctx context.Context, since time.Time) ([]string, error)
}
