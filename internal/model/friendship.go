package model

import "gorm.io/gorm"

// FriendShip is a directed follow edge. A row means the follower follows
// the followee. The composite unique index keeps the pair unique per
// direction; the check constraint keeps self-edges out of the schema even
// for callers that bypass the follow service.
type FriendShip struct {
	gorm.Model
	FolloweeID string `gorm:"uuid;not null;uniqueIndex:follow_unique;check:chk_no_self_follow,followee_id <> follower_id"`
	FollowerID string `gorm:"uuid;not null;uniqueIndex:follow_unique"`
	Followee   User   `gorm:"foreignKey:FolloweeID"`
	Follower   User   `gorm:"foreignKey:FollowerID"`
}
