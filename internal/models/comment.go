package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment represents a comment on a post in the Pulse application.
// PublicID, the target post and CreatedOn are immutable after create.
type Comment struct {
	ID         uint       `gorm:"primaryKey" json:"-"`
	PublicID   string     `gorm:"uniqueIndex;not null" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"-"`
	User       *User      `gorm:"foreignKey:UserID" json:"-"`
	PostID     uint       `gorm:"not null;index" json:"-"`
	Post       *Post      `gorm:"foreignKey:PostID" json:"-"`
	Comment    string     `gorm:"not null" json:"comment"`
	Tags       []string   `gorm:"serializer:json" json:"tags"`
	CreatedOn  time.Time  `gorm:"autoCreateTime;index" json:"createdOn"`
	EditedOn   *time.Time `json:"editedOn"`
	Visibility bool       `gorm:"default:true" json:"visibility"`
}

// BeforeCreate assigns the public identifier when missing.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.PublicID == "" {
		c.PublicID = uuid.NewString()
	}
	return nil
}

// CommentView is the fully denormalized public shape of a comment.
type CommentView struct {
	ID          string       `json:"id"`
	Comment     string       `json:"comment"`
	Tags        []string     `json:"tags"`
	CreatedOn   time.Time    `json:"createdOn"`
	EditedOn    *time.Time   `json:"editedOn"`
	Visibility  bool         `json:"visibility"`
	CommentedBy *UserSummary `json:"commentedBy"`
	Post        *string      `json:"post"`
}

// View projects the comment and its joined references to the public shape.
// Unresolved references render as null, mirroring PostView.
func (c *Comment) View() CommentView {
	v := CommentView{
		ID:         c.PublicID,
		Comment:    c.Comment,
		Tags:       c.Tags,
		CreatedOn:  c.CreatedOn,
		EditedOn:   c.EditedOn,
		Visibility: c.Visibility,
	}
	if c.User != nil && c.User.ID != 0 {
		summary := c.User.Summary()
		v.CommentedBy = &summary
	}
	if c.Post != nil && c.Post.ID != 0 {
		id := c.Post.PublicID
		v.Post = &id
	}
	return v
}
