package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	SocialID   string    `gorm:"not null;size:255;uniqueIndex:idx_users_social,priority:1"`
	SocialType string    `gorm:"not null;size:20;uniqueIndex:idx_users_social,priority:2"`
	Nickname   string    `gorm:"size:100"`
	Email      string    `gorm:"size:255"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
