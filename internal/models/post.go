package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a post in the Pulse application.
// Owner, PublicID, CreatedOn and the repost pointer are immutable after create.
// A null OriginalPostID means the post is an original, not a repost.
type Post struct {
	ID             uint       `gorm:"primaryKey" json:"-"`
	PublicID       string     `gorm:"uniqueIndex;not null" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"-"`
	User           *User      `gorm:"foreignKey:UserID" json:"-"`
	Caption        string     `gorm:"not null" json:"caption"`
	Body           string     `gorm:"type:text" json:"body,omitempty"`
	Tags           []string   `gorm:"serializer:json" json:"tags"`
	CreatedOn      time.Time  `gorm:"autoCreateTime;index" json:"createdOn"`
	LastEdited     *time.Time `json:"lastEdited"`
	OriginalPostID *uint      `gorm:"index" json:"-"`
	OriginalPost   *Post      `gorm:"foreignKey:OriginalPostID" json:"-"`
}

// BeforeCreate assigns the public identifier when missing.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.PublicID == "" {
		p.PublicID = uuid.NewString()
	}
	return nil
}

// PostView is the fully denormalized public shape of a post: every reference
// resolved to a public identifier, every internal field dropped.
type PostView struct {
	ID           string       `json:"id"`
	Caption      string       `json:"caption"`
	Body         string       `json:"body,omitempty"`
	Tags         []string     `json:"tags"`
	CreatedOn    time.Time    `json:"createdOn"`
	LastEdited   *time.Time   `json:"lastEdited"`
	User         *UserSummary `json:"user"`
	OriginalPost *string      `json:"originalPost,omitempty"`
}

// View projects the post and its joined references to the public shape.
// An unresolved owner or original post renders as null rather than dropping
// the record or faulting the page.
func (p *Post) View() PostView {
	v := PostView{
		ID:         p.PublicID,
		Caption:    p.Caption,
		Body:       p.Body,
		Tags:       p.Tags,
		CreatedOn:  p.CreatedOn,
		LastEdited: p.LastEdited,
	}
	if p.User != nil && p.User.ID != 0 {
		summary := p.User.Summary()
		v.User = &summary
	}
	if p.OriginalPost != nil && p.OriginalPost.ID != 0 {
		id := p.OriginalPost.PublicID
		v.OriginalPost = &id
	}
	return v
}
