// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"

	"pulse/internal/models"
)

// Field bounds for content and profile input.
const (
	MinPasswordLen = 8
	MaxPasswordLen = 50

	MinFullnameLen = 2
	MaxFullnameLen = 50

	MaxBioLen      = 50
	MinPhoneLen    = 10
	MaxPhoneLen    = 14
	MaxDialCodeLen = 4

	MinCaptionLen = 3
	MaxCaptionLen = 500
	MinBodyLen    = 10
	MaxBodyLen    = 1000

	MinCommentLen = 1
	MaxCommentLen = 1000

	MaxPostTags    = 50
	MaxCommentTags = 10
	MaxTagLen      = 50
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets length requirements
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}
	return nil
}

// ValidateFullname checks display-name bounds.
func ValidateFullname(fullname string) error {
	if len(fullname) < MinFullnameLen {
		return fmt.Errorf("fullname must be at least %d characters long", MinFullnameLen)
	}
	if len(fullname) > MaxFullnameLen {
		return fmt.Errorf("fullname must not exceed %d characters", MaxFullnameLen)
	}
	return nil
}

// ValidateBio checks bio bounds.
func ValidateBio(bio string) error {
	if len(bio) > MaxBioLen {
		return fmt.Errorf("bio must not exceed %d characters", MaxBioLen)
	}
	return nil
}

// ValidatePhone checks phone-number length bounds.
func ValidatePhone(phone string) error {
	if len(phone) < MinPhoneLen || len(phone) > MaxPhoneLen {
		return fmt.Errorf("phone must be between %d and %d characters", MinPhoneLen, MaxPhoneLen)
	}
	return nil
}

// ValidateDialCode checks dial-code length bounds.
func ValidateDialCode(dialCode string) error {
	if len(dialCode) > MaxDialCodeLen {
		return fmt.Errorf("dial code must not exceed %d characters", MaxDialCodeLen)
	}
	return nil
}

// ValidateAge checks that an age is a positive number.
func ValidateAge(age int) error {
	if age <= 0 {
		return fmt.Errorf("age must be a positive number")
	}
	return nil
}

// ValidateGender checks gender enumeration membership.
func ValidateGender(gender models.Gender) error {
	if !models.ValidGender(gender) {
		return fmt.Errorf("gender must be one of MALE, FEMALE, OTHER")
	}
	return nil
}

// ValidateCaption checks post caption bounds.
func ValidateCaption(caption string) error {
	if len(caption) < MinCaptionLen {
		return fmt.Errorf("caption must be at least %d characters long", MinCaptionLen)
	}
	if len(caption) > MaxCaptionLen {
		return fmt.Errorf("caption must not exceed %d characters", MaxCaptionLen)
	}
	return nil
}

// ValidateBody checks optional post-body bounds. Empty means absent and is
// validated by the caller, not here.
func ValidateBody(body string) error {
	if len(body) < MinBodyLen {
		return fmt.Errorf("body must be at least %d characters long", MinBodyLen)
	}
	if len(body) > MaxBodyLen {
		return fmt.Errorf("body must not exceed %d characters", MaxBodyLen)
	}
	return nil
}

// ValidateComment checks comment-text bounds.
func ValidateComment(comment string) error {
	if len(comment) < MinCommentLen {
		return fmt.Errorf("comment must not be empty")
	}
	if len(comment) > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}
	return nil
}

// ValidateTags checks tag-list cardinality and per-tag length.
func ValidateTags(tags []string, maxTags int) error {
	if len(tags) > maxTags {
		return fmt.Errorf("at most %d tags are allowed", maxTags)
	}
	for _, tag := range tags {
		if tag == "" {
			return fmt.Errorf("tags must not be empty")
		}
		if len(tag) > MaxTagLen {
			return fmt.Errorf("tags must not exceed %d characters", MaxTagLen)
		}
	}
	return nil
}
