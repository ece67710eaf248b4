package service

import (
	"context"
	"testing"

	"github.com/emrgen/tinytweet/internal/tester"
	"github.com/emrgen/tinytweet/internal/validate"
	"github.com/stretchr/testify/assert"
)

func TestAccountService_Register(t *testing.T) {
	tester.Setup()

	accounts, _ := newTestAccounts()

	t.Run("valid registration", func(t *testing.T) {
		user, err := accounts.Register(context.TODO(), "alice", "alice@mail.com", "Alice", "password123", nil)
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "password123", user.PasswordHash)
	})

	tests := []struct {
		name      string
		username  string
		email     string
		nickname  string
		password  string
		wantField string
	}{
		{name: "short username", username: "bob", email: "bob@mail.com", nickname: "Bob", password: "password123", wantField: "username"},
		{name: "non alphanumeric username", username: "bob-by", email: "bob@mail.com", nickname: "Bob", password: "password123", wantField: "username"},
		{name: "bad email", username: "bobby", email: "not-an-email", nickname: "Bob", password: "password123", wantField: "email"},
		{name: "empty nickname", username: "bobby", email: "bob@mail.com", nickname: "", password: "password123", wantField: "nickname"},
		{name: "short password", username: "bobby", email: "bob@mail.com", nickname: "Bob", password: "short", wantField: "password"},
		{name: "taken username", username: "alice", email: "alice2@mail.com", nickname: "Alice", password: "password123", wantField: "username"},
		{name: "taken email", username: "alice2", email: "alice@mail.com", nickname: "Alice", password: "password123", wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accounts.Register(context.TODO(), tt.username, tt.email, tt.nickname, tt.password, nil)

			var fieldErrs validate.Errors
			assert.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestAccountService_Authenticate(t *testing.T) {
	tester.Setup()

	accounts, _ := newTestAccounts()

	alice := registerTestUser(t, accounts, "alice")

	t.Run("valid credentials", func(t *testing.T) {
		user, err := accounts.Authenticate(context.TODO(), "alice@mail.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := accounts.Authenticate(context.TODO(), "alice@mail.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := accounts.Authenticate(context.TODO(), "nobody@mail.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated user", func(t *testing.T) {
		err := accounts.Deactivate(context.TODO(), alice.ID)
		assert.NoError(t, err)

		_, err = accounts.Authenticate(context.TODO(), "alice@mail.com", "password123")
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestQueryService_GetUserPage(t *testing.T) {
	tester.Setup()

	accounts, gormStore := newTestAccounts()
	tweets := NewTweetService(gormStore)
	follows := NewFollowService(gormStore)
	queries := NewQueryService(gormStore)

	alice := registerTestUser(t, accounts, "alice")
	bob := registerTestUser(t, accounts, "bobby")

	_, err := tweets.CreateTweet(context.TODO(), bob.ID, "bob speaks")
	assert.NoError(t, err)

	_, err = follows.Follow(context.TODO(), alice.ID, "bobby")
	assert.NoError(t, err)

	page, err := queries.GetUserPage(context.TODO(), alice.ID, "bobby")
	assert.NoError(t, err)
	assert.Equal(t, "bobby", page.User.Username)
	assert.Len(t, page.Tweets, 1)
	assert.Equal(t, int64(1), page.FollowerCount)
	assert.Equal(t, int64(0), page.FolloweeCount)
	assert.True(t, page.IsFollowed)

	page, err = queries.GetUserPage(context.TODO(), bob.ID, "alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.FollowerCount)
	assert.Equal(t, int64(1), page.FolloweeCount)
	assert.False(t, page.IsFollowed)

	_, err = queries.GetUserPage(context.TODO(), alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
