package service

import (
	"context"
	"testing"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/security"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/emrgen/tinytweet/internal/tester"
	"github.com/stretchr/testify/assert"
)

// lighter hash params keep the test suite fast
var testHasherParams = &security.Argon2Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func newTestAccounts() (*AccountService, store.Store) {
	gormStore := store.NewGormStore(tester.TestDB())
	return NewAccountService(gormStore, security.NewArgon2Hasher(testHasherParams)), gormStore
}

func registerTestUser(t *testing.T, accounts *AccountService, username string) *model.User {
	t.Helper()

	user, err := accounts.Register(context.TODO(), username, username+"@mail.com", "nick", "password123", nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)

	return user
}
