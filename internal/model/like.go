package model

import "gorm.io/gorm"

// LikeForTweet is a like edge between a user and a tweet. The composite
// unique index caps the pair at one row, so a concurrent double-like loses
// on the constraint rather than producing a duplicate.
type LikeForTweet struct {
	gorm.Model
	UserID  string `gorm:"uuid;not null;uniqueIndex:unique_like_for_tweet"`
	TweetID string `gorm:"uuid;not null;uniqueIndex:unique_like_for_tweet;index"`
	User    User   `gorm:"foreignKey:UserID"`
	Tweet   Tweet  `gorm:"foreignKey:TweetID"`
}
