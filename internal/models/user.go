// Package models contains data structures for the application's domain models.
//
// Every entity carries two identities: an internal numeric primary key used for
// storage references, and a stable public UUID used everywhere outside the
// process. Internal keys never appear in JSON output.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is the user gender enumeration.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ValidGender reports whether g is a member of the gender enumeration.
func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User represents an account in the Pulse application.
// UID, Email, Verified and Image are immutable through the profile-update path.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UID       string    `gorm:"uniqueIndex;not null" json:"uid"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Fullname  string    `json:"fullname"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	DialCode  string    `json:"dialCode"`
	Age       int       `json:"age,omitempty"`
	Image     string    `json:"image"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Gender    Gender    `gorm:"type:varchar(10)" json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the public identifier when missing.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.UID == "" {
		u.UID = uuid.NewString()
	}
	return nil
}

// UserSummary is the public projection of a user embedded in content views.
type UserSummary struct {
	UID      string `json:"uid"`
	Fullname string `json:"fullname"`
	Image    string `json:"image"`
}

// Summary projects the user to its embedded public shape.
func (u *User) Summary() UserSummary {
	return UserSummary{
		UID:      u.UID,
		Fullname: u.Fullname,
		Image:    u.Image,
	}
}
