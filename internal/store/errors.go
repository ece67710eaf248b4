package store

import "errors"

var (
	// ErrAlreadyFollowing is returned when the follow edge is already present.
	ErrAlreadyFollowing = errors.New("already following")
	// ErrSelfFollow is returned when followee and follower are the same user.
	ErrSelfFollow = errors.New("cannot follow self")
)
