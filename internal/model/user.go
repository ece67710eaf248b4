package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID           string `gorm:"primaryKey;uuid;not null;"`
	Username     string `gorm:"uniqueIndex;size:32;not null"`
	Email        string `gorm:"uniqueIndex;size:50;not null"`
	Nickname     string `gorm:"size:10;not null"`
	PasswordHash string `gorm:"not null"`
	DateOfBirth  *time.Time
	IsActive     bool `gorm:"default:true"`
}

func CreateUser(db *gorm.DB, user *User) error {
	return db.Create(user).Error
}

func GetUser(db *gorm.DB, id string) (*User, error) {
	user := &User{}
	err := db.Where("id = ?", id).First(user).Error
	if err != nil {
		return nil, err
	}

	return user, nil
}

func GetUserByUsername(db *gorm.DB, username string) (*User, error) {
	user := &User{}
	err := db.Where("username = ?", username).First(user).Error
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) MarshalBinary() ([]byte, error) {
	return json.Marshal(u)
}
