package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FollowOutcome tags the result of a follow or unfollow call.
type FollowOutcome string

const (
	// FollowCreated means a new follow edge was created.
	FollowCreated FollowOutcome = "followed"
	// FollowAlreadyFollowing means the edge already existed; nothing changed.
	FollowAlreadyFollowing FollowOutcome = "already_following"
	// FollowSelfRejected means the user tried to follow themselves.
	FollowSelfRejected FollowOutcome = "self_rejected"

	// UnfollowCompleted means the follow edge was removed.
	UnfollowCompleted FollowOutcome = "unfollowed"
	// UnfollowNotFollowing means there was no edge to remove; nothing changed.
	UnfollowNotFollowing FollowOutcome = "not_following"
	// UnfollowSelfRejected means the user tried to unfollow themselves.
	UnfollowSelfRejected FollowOutcome = "self_rejected"
)

// FollowResult is the structured outcome of a follow or unfollow call.
// Warning holds the user-facing message for the non-mutating outcomes.
type FollowResult struct {
	Outcome FollowOutcome `json:"outcome"`
	Target  *model.User   `json:"-"`
	Warning string        `json:"warning,omitempty"`
}

// NewFollowService creates a new FollowService.
func NewFollowService(store store.Store) *FollowService {
	return &FollowService{
		store: store,
	}
}

// FollowService implements the follow/unfollow mutations on the social graph.
type FollowService struct {
	store store.Store
}

// Follow makes the acting user follow the user with the target handle.
// The call is idempotent: repeating it never creates a second edge and
// never surfaces a uniqueness violation.
func (f *FollowService) Follow(ctx context.Context, actorID, targetUsername string) (*FollowResult, error) {
	var result *FollowResult

	err := f.store.Transaction(ctx, func(tx store.Store) error {
		target, err := tx.GetUserByUsername(ctx, targetUsername)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if target.ID == actorID {
			result = &FollowResult{
				Outcome: FollowSelfRejected,
				Target:  target,
				Warning: "you cannot follow yourself",
			}
			return nil
		}

		err = tx.CreateFollow(ctx, target.ID, actorID)
		if errors.Is(err, store.ErrAlreadyFollowing) {
			result = &FollowResult{
				Outcome: FollowAlreadyFollowing,
				Target:  target,
				Warning: fmt.Sprintf("you are already following %s", target.Username),
			}
			return nil
		}
		if err != nil {
			return err
		}

		result = &FollowResult{Outcome: FollowCreated, Target: target}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == FollowCreated {
		logrus.Infof("user %s followed %s", actorID, result.Target.Username)
	}

	return result, nil
}

// Unfollow removes the follow edge from the acting user to the target
// handle. Unfollowing a user that is not followed is a no-op success.
func (f *FollowService) Unfollow(ctx context.Context, actorID, targetUsername string) (*FollowResult, error) {
	var result *FollowResult

	err := f.store.Transaction(ctx, func(tx store.Store) error {
		target, err := tx.GetUserByUsername(ctx, targetUsername)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if target.ID == actorID {
			result = &FollowResult{
				Outcome: UnfollowSelfRejected,
				Target:  target,
				Warning: "you cannot unfollow yourself",
			}
			return nil
		}

		removed, err := tx.DeleteFollow(ctx, target.ID, actorID)
		if err != nil {
			return err
		}

		if !removed {
			result = &FollowResult{
				Outcome: UnfollowNotFollowing,
				Target:  target,
				Warning: fmt.Sprintf("you are not following %s", target.Username),
			}
			return nil
		}

		result = &FollowResult{Outcome: UnfollowCompleted, Target: target}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == UnfollowCompleted {
		logrus.Infof("user %s unfollowed %s", actorID, result.Target.Username)
	}

	return result, nil
}
