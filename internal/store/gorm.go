package store

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/tinytweet/internal/model"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateUser(ctx context.Context, user *model.User) error {
	return g.db.WithContext(ctx).Create(user).Error
}

func (g *GormStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return &user, err
}

func (g *GormStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := g.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return &user, err
}

func (g *GormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (g *GormStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := g.db.WithContext(ctx).Order("username").Find(&users).Error
	return users, err
}

func (g *GormStore) SetUserActive(ctx context.Context, id string, active bool) error {
	return g.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", active).Error
}

func (g *GormStore) FollowExists(ctx context.Context, followeeID, followerID string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.FriendShip{}).
		Where("followee_id = ? AND follower_id = ?", followeeID, followerID).
		Count(&count).Error
	return count > 0, err
}

// CreateFollow creates a follow edge. The unique index breaks the race
// between two concurrent writers of the same edge; the loser gets the same
// ErrAlreadyFollowing a sequential duplicate call would get.
func (g *GormStore) CreateFollow(ctx context.Context, followeeID, followerID string) error {
	if followeeID == followerID {
		return ErrSelfFollow
	}

	edge := &model.FriendShip{FolloweeID: followeeID, FollowerID: followerID}
	err := g.db.WithContext(ctx).Create(edge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyFollowing
	}

	return err
}

func (g *GormStore) DeleteFollow(ctx context.Context, followeeID, followerID string) (bool, error) {
	res := g.db.WithContext(ctx).Unscoped().
		Where("followee_id = ? AND follower_id = ?", followeeID, followerID).
		Delete(&model.FriendShip{})
	return res.RowsAffected > 0, res.Error
}

func (g *GormStore) ListFollowers(ctx context.Context, userID string) ([]*model.User, error) {
	var users []*model.User
	err := g.db.WithContext(ctx).
		Joins("JOIN friend_ships ON friend_ships.follower_id = users.id AND friend_ships.deleted_at IS NULL").
		Where("friend_ships.followee_id = ?", userID).
		Order("friend_ships.id").
		Find(&users).Error
	return users, err
}

func (g *GormStore) ListFollowees(ctx context.Context, userID string) ([]*model.User, error) {
	var users []*model.User
	err := g.db.WithContext(ctx).
		Joins("JOIN friend_ships ON friend_ships.followee_id = users.id AND friend_ships.deleted_at IS NULL").
		Where("friend_ships.follower_id = ?", userID).
		Order("friend_ships.id").
		Find(&users).Error
	return users, err
}

func (g *GormStore) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.FriendShip{}).
		Where("followee_id = ?", userID).Count(&count).Error
	return count, err
}

func (g *GormStore) CountFollowees(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.FriendShip{}).
		Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (g *GormStore) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return g.db.WithContext(ctx).Create(tweet).Error
}

func (g *GormStore) GetTweet(ctx context.Context, id string) (*model.Tweet, error) {
	var tweet model.Tweet
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&tweet).Error
	return &tweet, err
}

func (g *GormStore) ListTweets(ctx context.Context) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	err := g.db.WithContext(ctx).Order("created_at desc").Find(&tweets).Error
	return tweets, err
}

func (g *GormStore) ListUserTweets(ctx context.Context, userID string) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&tweets).Error
	return tweets, err
}

func (g *GormStore) DeleteTweet(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("tweet_id = ?", id).Delete(&model.LikeForTweet{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", id).Delete(&model.Tweet{}).Error
	})
}

// CreateLike is get-or-create. A duplicate insert lost to a concurrent
// liker reads back as "already present" rather than an error.
func (g *GormStore) CreateLike(ctx context.Context, userID, tweetID string) (bool, error) {
	edge := &model.LikeForTweet{UserID: userID, TweetID: tweetID}
	err := g.db.WithContext(ctx).Create(edge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (g *GormStore) DeleteLike(ctx context.Context, userID, tweetID string) (bool, error) {
	res := g.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&model.LikeForTweet{})
	return res.RowsAffected > 0, res.Error
}

func (g *GormStore) LikeExists(ctx context.Context, userID, tweetID string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.LikeForTweet{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error
	return count > 0, err
}

func (g *GormStore) CountLikes(ctx context.Context, tweetID string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.LikeForTweet{}).
		Where("tweet_id = ?", tweetID).Count(&count).Error
	return count, err
}

func (g *GormStore) ListLikers(ctx context.Context, tweetID string) ([]*model.User, error) {
	var users []*model.User
	err := g.db.WithContext(ctx).
		Joins("JOIN like_for_tweets ON like_for_tweets.user_id = users.id AND like_for_tweets.deleted_at IS NULL").
		Where("like_for_tweets.tweet_id = ?", tweetID).
		Order("like_for_tweets.id").
		Find(&users).Error
	return users, err
}

func (g *GormStore) ListRecentlyLikedTweetIDs(ctx context.Context, since time.Time) ([]string, error) {
	var ids []string
	err := g.db.WithContext(ctx).Model(&model.LikeForTweet{}).
		Distinct("tweet_id").
		Where("updated_at >= ?", since).
		Pluck("tweet_id", &ids).Error
	return ids, err
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
