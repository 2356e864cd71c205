package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) GetActiveEdge(ctx context.Context, followerID, followeeID uint) (*models.FollowEdge, error) {
	args := m.Called(ctx, followerID, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FollowEdge), args.Error(1)
}

func (m *MockFollowRepository) Create(ctx context.Context, edge *models.FollowEdge) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, edgeID uint) error {
	args := m.Called(ctx, edgeID)
	return args.Error(0)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, userID uint, params repository.ListParams) ([]models.User, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, userID uint, params repository.ListParams) ([]models.User, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]models.User), args.Error(1)
}

func newFollowTestApp(followRepo *MockFollowRepository, userRepo *MockUserRepository) *fiber.App {
	app := fiber.New()
	s := &Server{followService: service.NewFollowService(followRepo, userRepo)}

	app.Use(withTestUser(&models.User{ID: 1, UID: "alice-uid", Fullname: "Alice"}))
	app.Post("/protected/users/followRequest/follow/:uid", s.FollowUser)
	app.Post("/protected/users/followRequest/unFollow/:uid", s.UnfollowUser)
	app.Get("/protected/users/followRequest/followers", s.GetFollowers)
	return app
}

func TestFollowUserHandler(t *testing.T) {
	bob := &models.User{ID: 2, UID: "bob-uid", Fullname: "Bob"}

	t.Run("success", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUID", mock.Anything, "bob-uid").Return(bob, nil)
		followRepo.On("GetActiveEdge", mock.Anything, uint(1), uint(2)).Return(nil, nil)
		followRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		app := newFollowTestApp(followRepo, userRepo)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected/users/followRequest/follow/bob-uid", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		followRepo.AssertExpectations(t)
	})

	t.Run("self follow is 400", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUID", mock.Anything, "alice-uid").
			Return(&models.User{ID: 1, UID: "alice-uid"}, nil)

		app := newFollowTestApp(followRepo, userRepo)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected/users/followRequest/follow/alice-uid", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("already following is 400", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUID", mock.Anything, "bob-uid").Return(bob, nil)
		followRepo.On("GetActiveEdge", mock.Anything, uint(1), uint(2)).
			Return(&models.FollowEdge{ID: 9}, nil)

		app := newFollowTestApp(followRepo, userRepo)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected/users/followRequest/follow/bob-uid", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown target is 404", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUID", mock.Anything, "nobody-uid").
			Return(nil, models.NewNotFoundError("User", "nobody-uid"))

		app := newFollowTestApp(followRepo, userRepo)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected/users/followRequest/follow/nobody-uid", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUnfollowUserHandler(t *testing.T) {
	bob := &models.User{ID: 2, UID: "bob-uid", Fullname: "Bob"}

	t.Run("success", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUID", mock.Anything, "bob-uid").Return(bob, nil)
		followRepo.On("GetActiveEdge", mock.Anything, uint(1), uint(2)).
			Return(&models.FollowEdge{ID: 9}, nil)
		followRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

		app := newFollowTestApp(followRepo, userRepo)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected/users/followRequest/unFollow/bob-uid", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		followRepo.AssertExpectations(t)
	})

	t.Run("not following is 400", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUID", mock.Anything, "bob-uid").Return(bob, nil)
		followRepo.On("GetActiveEdge", mock.Anything, uint(1), uint(2)).Return(nil, nil)

		app := newFollowTestApp(followRepo, userRepo)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected/users/followRequest/unFollow/bob-uid", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetFollowersHandler(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	followRepo.On("ListFollowers", mock.Anything, uint(1), mock.Anything).
		Return([]models.User{{ID: 2, UID: "bob-uid", Fullname: "Bob"}}, nil)

	app := newFollowTestApp(followRepo, userRepo)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected/users/followRequest/followers", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
