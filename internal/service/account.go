package service

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/security"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/emrgen/tinytweet/internal/validate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewAccountService creates a new AccountService.
func NewAccountService(store store.Store, hasher *security.Argon2Hasher) *AccountService {
	return &AccountService{
		store:  store,
		hasher: hasher,
	}
}

// AccountService implements registration, authentication and account lookup.
type AccountService struct {
	store  store.Store
	hasher *security.Argon2Hasher
}

// Register validates the sign-up fields, hashes the password and creates
// the user. A taken username or email comes back as a field error, not a
// raw constraint violation.
func (a *AccountService) Register(ctx context.Context, username, email, nickname, password string, dateOfBirth *time.Time) (*model.User, error) {
	if errs := validate.Registration(username, email, nickname, password); len(errs) > 0 {
		return nil, errs
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		Nickname:     nickname,
		PasswordHash: hash,
		DateOfBirth:  dateOfBirth,
		IsActive:     true,
	}

	err = a.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetUserByUsername(ctx, username); err == nil {
			return validate.Errors{{Field: "username", Message: "is already taken"}}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if _, err := tx.GetUserByEmail(ctx, email); err == nil {
			return validate.Errors{{Field: "email", Message: "is already registered"}}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err := tx.CreateUser(ctx, user)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent registration of the same handle or email
			return validate.Errors{{Field: "username", Message: "is already taken"}}
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("registered user %s", user.Username)

	return user, nil
}

// Authenticate checks the credentials and returns the matching active user.
func (a *AccountService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := a.store.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// GetByUsername resolves a handle to a user.
func (a *AccountService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := a.store.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID resolves a user ID to a user.
func (a *AccountService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := a.store.GetUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsernames retrieves all handles, as the user directory page shows them.
func (a *AccountService) ListUsernames(ctx context.Context) ([]string, error) {
	users, err := a.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}

	return usernames, nil
}

// Deactivate turns off the active flag. Users are never deleted.
func (a *AccountService) Deactivate(ctx context.Context, id string) error {
	if _, err := a.GetByID(ctx, id); err != nil {
		return err
	}

	return a.store.SetUserActive(ctx, id, false)
}
