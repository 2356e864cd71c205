package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post;index" json:"-"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"createdOn"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Post *Post `gorm:"foreignKey:PostID" json:"-"`
}
