package service

import (
	"context"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService contains business logic for user profiles.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a partial profile update. Nil pointers leave the
// field untouched. UID, email, verified and image are immutable through this
// path.
type UpdateProfileInput struct {
	Fullname *string        `json:"fullname"`
	Password *string        `json:"password"`
	Bio      *string        `json:"bio"`
	Phone    *string        `json:"phone"`
	DialCode *string        `json:"dialCode"`
	Age      *int           `json:"age"`
	Gender   *models.Gender `json:"gender"`
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// PublicProfile returns the profile in its public JSON shape, served through
// the cache. Internal fields carry json:"-" so they never enter the cache
// entry; a cache hit round-trips only the public fields.
func (s *UserService) PublicProfile(ctx context.Context, uid string) (*models.User, error) {
	var profile models.User
	err := cache.Aside(ctx, cache.UserKey(uid), &profile, cache.UserTTL, func() error {
		fresh, err := s.userRepo.GetByUID(ctx, uid)
		if err != nil {
			return err
		}
		profile = *fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile validates and applies a partial update to the acting user's
// profile. A new password is re-hashed before storage.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, in UpdateProfileInput) (*models.User, error) {
	if in.Fullname != nil {
		if err := validation.ValidateFullname(*in.Fullname); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Fullname = *in.Fullname
	}
	if in.Password != nil {
		if err := validation.ValidatePassword(*in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}
	if in.Bio != nil {
		if err := validation.ValidateBio(*in.Bio); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Bio = *in.Bio
	}
	if in.Phone != nil {
		if err := validation.ValidatePhone(*in.Phone); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Phone = *in.Phone
	}
	if in.DialCode != nil {
		if err := validation.ValidateDialCode(*in.DialCode); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.DialCode = *in.DialCode
	}
	if in.Age != nil {
		if err := validation.ValidateAge(*in.Age); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Age = *in.Age
	}
	if in.Gender != nil {
		if err := validation.ValidateGender(*in.Gender); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Gender = *in.Gender
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateUser(ctx, user.UID)
	return user, nil
}
