package service

import (
	"context"
	"sync"
	"testing"

	"github.com/emrgen/tinytweet/internal/tester"
	"github.com/stretchr/testify/assert"
)

func TestEngagementService_Like(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	tweets := NewTweetService(gormStore)
	engagement := NewEngagementService(gormStore, tester.Cache())

	alice := registerTestUser(t, accounts, "alice")
	bob := registerTestUser(t, accounts, "bobby")

	tweet, err := tweets.CreateTweet(context.TODO(), alice.ID, "hello world")
	assert.NoError(t, err)

	t.Run("like sets count and liked flag", func(t *testing.T) {
		res, err := engagement.Like(context.TODO(), bob.ID, tweet.ID)
		assert.NoError(t, err)
		assert.Equal(t, tweet.ID, res.TweetID)
		assert.Equal(t, int64(1), res.LikeCount)
		assert.True(t, res.Liked)
	})

	t.Run("repeated like is idempotent", func(t *testing.T) {
		res, err := engagement.Like(context.TODO(), bob.ID, tweet.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.LikeCount)
		assert.True(t, res.Liked)
	})

	t.Run("unlike removes the edge and reports the count", func(t *testing.T) {
		res, err := engagement.Unlike(context.TODO(), bob.ID, tweet.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), res.LikeCount)
		assert.False(t, res.Liked)
	})

	t.Run("repeated unlike is idempotent", func(t *testing.T) {
		res, err := engagement.Unlike(context.TODO(), bob.ID, tweet.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), res.LikeCount)
		assert.False(t, res.Liked)
	})

	t.Run("missing tweet", func(t *testing.T) {
		_, err := engagement.Like(context.TODO(), bob.ID, "no-such-tweet")
		assert.ErrorIs(t, err, ErrTweetNotFound)

		_, err = engagement.Unlike(context.TODO(), bob.ID, "no-such-tweet")
		assert.ErrorIs(t, err, ErrTweetNotFound)
	})
}

func TestEngagementService_ConcurrentLikes(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	tweets := NewTweetService(gormStore)
	engagement := NewEngagementService(gormStore, tester.Cache())

	alice := registerTestUser(t, accounts, "alice")
	bob := registerTestUser(t, accounts, "bobby")

	tweet, err := tweets.CreateTweet(context.TODO(), alice.ID, "race me")
	assert.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := engagement.Like(context.TODO(), bob.ID, tweet.ID)
			assert.NoError(t, err)
			assert.True(t, res.Liked)
		}()
	}
	wg.Wait()

	count, err := gormStore.CountLikes(context.TODO(), tweet.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEngagementService_Scenario(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	tweets := NewTweetService(gormStore)
	engagement := NewEngagementService(gormStore, tester.Cache())
	queries := NewQueryService(gormStore)

	alice := registerTestUser(t, accounts, "alice")
	bob := registerTestUser(t, accounts, "bobby")

	tweet, err := tweets.CreateTweet(context.TODO(), alice.ID, "hello world")
	assert.NoError(t, err)
	assert.Equal(t, "hello world", tweet.Content)
	assert.Equal(t, alice.ID, tweet.UserID)
	assert.False(t, tweet.CreatedAt.IsZero())

	res, err := engagement.Like(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.LikeCount)

	likers, err := queries.Likers(context.TODO(), tweet.ID)
	assert.NoError(t, err)
	assert.Len(t, likers, 1)
	assert.Equal(t, "bobby", likers[0].Username)

	liked, err := engagement.HasLiked(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.True(t, liked)

	res, err = engagement.Unlike(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), res.LikeCount)

	count, err := engagement.LikeCount(context.TODO(), tweet.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
