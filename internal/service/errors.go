package service

import "errors"

var (
	// ErrUserNotFound is returned when the target handle resolves to no user.
	ErrUserNotFound = errors.New("user not found")
	// ErrTweetNotFound is returned when the target tweet does not exist.
	ErrTweetNotFound = errors.New("tweet not found")
	// ErrNotTweetOwner is returned when a user tries to delete someone else's tweet.
	ErrNotTweetOwner = errors.New("not the tweet owner")
	// ErrInvalidCredentials is returned when authentication fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserInactive is returned when a deactivated user authenticates.
	ErrUserInactive = errors.New("user is deactivated")
)
