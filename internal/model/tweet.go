package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

const (
	// MaxTweetContentLength is the upper bound on a tweet body, in characters.
	MaxTweetContentLength = 200
)

type Tweet struct {
	gorm.Model
	ID      string `gorm:"primaryKey;uuid;not null;"`
	UserID  string `gorm:"uuid;not null;index"`
	User    User   `gorm:"foreignKey:UserID"`
	Content string `gorm:"size:200;not null"`
}

func GetTweet(db *gorm.DB, id string) (*Tweet, error) {
	tweet := &Tweet{}
	err := db.Where("id = ?", id).First(tweet).Error
	if err != nil {
		return nil, err
	}

	return tweet, nil
}

func (t *Tweet) MarshalBinary() ([]byte, error) {
	return json.Marshal(t)
}
