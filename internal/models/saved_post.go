package models

import "time"

// SavedPost marks a post bookmarked by a user.
// The combination of UserID and PostID must be unique.
type SavedPost struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_post;index" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_post" json:"-"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"createdOn"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Post *Post `gorm:"foreignKey:PostID" json:"-"`
}
