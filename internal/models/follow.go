package models

import "time"

// FollowEdge is a directed follow relationship: FollowedBy follows FollowedUser.
// At most one edge may exist per ordered pair; the composite unique index
// enforces the invariant at the store level so concurrent follow requests
// cannot both insert.
//
// Accepted is always written true: the pending-approval workflow is not
// implemented, the field stays so a private-account flow can flip the default
// later without a migration.
type FollowEdge struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	FollowedByID   uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"-"`
	FollowedUserID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"-"`
	Accepted       bool      `gorm:"default:true" json:"accepted"`
	Unfollowed     bool      `gorm:"default:false" json:"unfollowed"`
	CreatedOn      time.Time `gorm:"autoCreateTime" json:"createdOn"`

	FollowedBy   *User `gorm:"foreignKey:FollowedByID" json:"-"`
	FollowedUser *User `gorm:"foreignKey:FollowedUserID" json:"-"`
}

// TableName specifies the table name for GORM
func (FollowEdge) TableName() string {
	return "follow_edges"
}

// Active reports whether the edge currently counts as a follow.
func (f *FollowEdge) Active() bool {
	return !f.Unfollowed
}
