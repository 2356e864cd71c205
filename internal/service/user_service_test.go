package service

import (
	"context"
	"strings"
	"testing"

	"pulse/internal/cache"
	"pulse/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByUIDFn   func(context.Context, string) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.getByUIDFn(ctx, uid)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUIDFn:   func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   UpdateProfileInput
	}{
		{"fullname too short", UpdateProfileInput{Fullname: strPtr("x")}},
		{"fullname too long", UpdateProfileInput{Fullname: strPtr(strings.Repeat("x", 51))}},
		{"password too short", UpdateProfileInput{Password: strPtr("short")}},
		{"bio too long", UpdateProfileInput{Bio: strPtr(strings.Repeat("x", 51))}},
		{"phone too short", UpdateProfileInput{Phone: strPtr("123")}},
		{"dial code too long", UpdateProfileInput{DialCode: strPtr("+12345")}},
		{"negative age", UpdateProfileInput{Age: intPtr(-1)}},
		{"unknown gender", UpdateProfileInput{Gender: genderPtr("ROBOT")}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			user := &models.User{ID: 1, UID: "user-uid"}
			_, err := svc.UpdateProfile(ctx, user, tc.in)
			assertValidationError(t, err)
		})
	}
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	var saved *models.User
	repo.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	svc := NewUserService(repo)
	user := &models.User{
		ID:       1,
		UID:      "user-uid",
		Email:    "user@example.com",
		Verified: true,
		Fullname: "Old Name",
	}

	age := 30
	gender := models.GenderOther
	updated, err := svc.UpdateProfile(context.Background(), user, UpdateProfileInput{
		Fullname: strPtr("New Name"),
		Bio:      strPtr("hello"),
		Phone:    strPtr("5551234567"),
		DialCode: strPtr("+44"),
		Age:      &age,
		Gender:   &gender,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "New Name", updated.Fullname)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, models.GenderOther, updated.Gender)

	// Immutable fields survive untouched.
	assert.Equal(t, "user-uid", updated.UID)
	assert.Equal(t, "user@example.com", updated.Email)
	assert.True(t, updated.Verified)
}

func TestUserService_UpdateProfile_PasswordRehash(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	svc := NewUserService(repo)
	user := &models.User{ID: 1, UID: "user-uid", Password: "old-hash"}

	updated, err := svc.UpdateProfile(context.Background(), user, UpdateProfileInput{
		Password: strPtr("newpassword123"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "old-hash", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword123")))
}

func TestUserService_UpdateProfile_PartialLeavesRest(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	user := &models.User{ID: 1, Fullname: "Keep Me", Bio: "keep bio"}

	updated, err := svc.UpdateProfile(context.Background(), user, UpdateProfileInput{
		Bio: strPtr("new bio"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", updated.Fullname)
	assert.Equal(t, "new bio", updated.Bio)
}

func TestUserService_PublicProfile(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	loads := 0
	repo := noopUserRepo()
	repo.getByUIDFn = func(_ context.Context, uid string) (*models.User, error) {
		loads++
		return &models.User{
			ID:       7,
			UID:      uid,
			Email:    "user@example.com",
			Fullname: "Cache Me",
			Password: "bcrypt-hash",
		}, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	profile, err := svc.PublicProfile(ctx, "user-uid")
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
	assert.Equal(t, "Cache Me", profile.Fullname)

	// The stored entry holds the public shape only.
	raw, err := mr.Get(cache.UserKey("user-uid"))
	require.NoError(t, err)
	assert.Contains(t, raw, "Cache Me")
	assert.NotContains(t, raw, "bcrypt-hash")

	// A second read is a cache hit.
	again, err := svc.PublicProfile(ctx, "user-uid")
	require.NoError(t, err)
	assert.Equal(t, 1, loads, "loader must not run on a cache hit")
	assert.Equal(t, "Cache Me", again.Fullname)
	assert.Empty(t, again.Password)

	// Updating the profile invalidates the entry so the next read is fresh.
	user := &models.User{ID: 7, UID: "user-uid", Fullname: "Cache Me"}
	_, err = svc.UpdateProfile(ctx, user, UpdateProfileInput{Fullname: strPtr("Fresh Name")})
	require.NoError(t, err)
	repo.getByUIDFn = func(_ context.Context, uid string) (*models.User, error) {
		loads++
		return &models.User{ID: 7, UID: uid, Fullname: "Fresh Name"}, nil
	}
	fresh, err := svc.PublicProfile(ctx, "user-uid")
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
	assert.Equal(t, "Fresh Name", fresh.Fullname)
}

func intPtr(n int) *int { return &n }

func genderPtr(g models.Gender) *models.Gender { return &g }
