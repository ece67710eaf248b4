package store

import (
	"context"
	"os"
	"testing"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/tester"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	os.Exit(code)
}

func newTestUser(t *testing.T, s *GormStore, username string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@mail.com",
		Nickname:     "nick",
		PasswordHash: "x",
		IsActive:     true,
	}
	assert.NoError(t, s.CreateUser(context.TODO(), user))

	return user
}

func TestGormStore_CreateFollow(t *testing.T) {
	tester.Setup()

	s := NewGormStore(tester.TestDB())
	alice := newTestUser(t, s, "alice")
	bob := newTestUser(t, s, "bobby")

	t.Run("creates the edge once", func(t *testing.T) {
		assert.NoError(t, s.CreateFollow(context.TODO(), bob.ID, alice.ID))

		err := s.CreateFollow(context.TODO(), bob.ID, alice.ID)
		assert.ErrorIs(t, err, ErrAlreadyFollowing)

		count, err := s.CountFollowers(context.TODO(), bob.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("edge is directional", func(t *testing.T) {
		// bob following alice is a distinct edge
		assert.NoError(t, s.CreateFollow(context.TODO(), alice.ID, bob.ID))

		exists, err := s.FollowExists(context.TODO(), alice.ID, bob.ID)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("self edge rejected at the store", func(t *testing.T) {
		err := s.CreateFollow(context.TODO(), alice.ID, alice.ID)
		assert.ErrorIs(t, err, ErrSelfFollow)

		exists, err := s.FollowExists(context.TODO(), alice.ID, alice.ID)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormStore_DeleteFollow(t *testing.T) {
	tester.Setup()

	s := NewGormStore(tester.TestDB())
	alice := newTestUser(t, s, "alice")
	bob := newTestUser(t, s, "bobby")

	removed, err := s.DeleteFollow(context.TODO(), bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, removed)

	assert.NoError(t, s.CreateFollow(context.TODO(), bob.ID, alice.ID))

	removed, err = s.DeleteFollow(context.TODO(), bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	// deletion is hard; the edge can be recreated
	assert.NoError(t, s.CreateFollow(context.TODO(), bob.ID, alice.ID))
}

func TestGormStore_Likes(t *testing.T) {
	tester.Setup()

	s := NewGormStore(tester.TestDB())
	alice := newTestUser(t, s, "alice")
	bob := newTestUser(t, s, "bobby")

	tweet := &model.Tweet{ID: uuid.New().String(), UserID: alice.ID, Content: "hello"}
	assert.NoError(t, s.CreateTweet(context.TODO(), tweet))

	created, err := s.CreateLike(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	created, err = s.CreateLike(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.False(t, created)

	count, err := s.CountLikes(context.TODO(), tweet.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	likers, err := s.ListLikers(context.TODO(), tweet.ID)
	assert.NoError(t, err)
	assert.Len(t, likers, 1)
	assert.Equal(t, "bobby", likers[0].Username)

	removed, err := s.DeleteLike(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteLike(context.TODO(), bob.ID, tweet.ID)
	assert.NoError(t, err)
	assert.False(t, removed)
}
