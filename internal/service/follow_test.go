package service

import (
	"context"
	"testing"

	"github.com/emrgen/tinytweet/internal/tester"
	"github.com/stretchr/testify/assert"
)

func TestFollowService_Follow(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	follows := NewFollowService(gormStore)

	alice := registerTestUser(t, accounts, "alice")
	registerTestUser(t, accounts, "bobby")

	t.Run("follow creates the edge", func(t *testing.T) {
		res, err := follows.Follow(context.TODO(), alice.ID, "bobby")
		assert.NoError(t, err)
		assert.Equal(t, FollowCreated, res.Outcome)
		assert.Empty(t, res.Warning)

		exists, err := gormStore.FollowExists(context.TODO(), res.Target.ID, alice.ID)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("second follow is idempotent", func(t *testing.T) {
		res, err := follows.Follow(context.TODO(), alice.ID, "bobby")
		assert.NoError(t, err)
		assert.Equal(t, FollowAlreadyFollowing, res.Outcome)
		assert.NotEmpty(t, res.Warning)

		followers, err := gormStore.ListFollowers(context.TODO(), res.Target.ID)
		assert.NoError(t, err)
		assert.Len(t, followers, 1)
	})

	t.Run("self follow is rejected without mutation", func(t *testing.T) {
		res, err := follows.Follow(context.TODO(), alice.ID, "alice")
		assert.NoError(t, err)
		assert.Equal(t, FollowSelfRejected, res.Outcome)
		assert.NotEmpty(t, res.Warning)

		exists, err := gormStore.FollowExists(context.TODO(), alice.ID, alice.ID)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := follows.Follow(context.TODO(), alice.ID, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	follows := NewFollowService(gormStore)

	alice := registerTestUser(t, accounts, "alice")
	bob := registerTestUser(t, accounts, "bobby")

	t.Run("unfollow without an edge is a no-op success", func(t *testing.T) {
		res, err := follows.Unfollow(context.TODO(), alice.ID, "bobby")
		assert.NoError(t, err)
		assert.Equal(t, UnfollowNotFollowing, res.Outcome)
	})

	t.Run("unfollow removes the edge", func(t *testing.T) {
		_, err := follows.Follow(context.TODO(), alice.ID, "bobby")
		assert.NoError(t, err)

		res, err := follows.Unfollow(context.TODO(), alice.ID, "bobby")
		assert.NoError(t, err)
		assert.Equal(t, UnfollowCompleted, res.Outcome)

		followers, err := gormStore.ListFollowers(context.TODO(), bob.ID)
		assert.NoError(t, err)
		assert.Empty(t, followers)
	})

	t.Run("self unfollow is rejected", func(t *testing.T) {
		res, err := follows.Unfollow(context.TODO(), alice.ID, "alice")
		assert.NoError(t, err)
		assert.Equal(t, UnfollowSelfRejected, res.Outcome)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := follows.Unfollow(context.TODO(), alice.ID, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestFollowService_RoundTrip(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	follows := NewFollowService(gormStore)
	queries := NewQueryService(gormStore)

	alice := registerTestUser(t, accounts, "alice")
	registerTestUser(t, accounts, "bobby")

	// follow, unfollow, follow again restores exactly one edge
	res, err := follows.Follow(context.TODO(), alice.ID, "bobby")
	assert.NoError(t, err)
	assert.Equal(t, FollowCreated, res.Outcome)

	res, err = follows.Unfollow(context.TODO(), alice.ID, "bobby")
	assert.NoError(t, err)
	assert.Equal(t, UnfollowCompleted, res.Outcome)

	res, err = follows.Follow(context.TODO(), alice.ID, "bobby")
	assert.NoError(t, err)
	assert.Equal(t, FollowCreated, res.Outcome)

	followers, err := queries.Followers(context.TODO(), "bobby")
	assert.NoError(t, err)
	assert.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].Username)

	followees, err := queries.Followees(context.TODO(), "alice")
	assert.NoError(t, err)
	assert.Len(t, followees, 1)
	assert.Equal(t, "bobby", followees[0].Username)

	following, err := queries.IsFollowing(context.TODO(), "alice", "bobby")
	assert.NoError(t, err)
	assert.True(t, following)

	following, err = queries.IsFollowing(context.TODO(), "bobby", "alice")
	assert.NoError(t, err)
	assert.False(t, following)
}
