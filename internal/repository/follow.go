package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/models"
	"pulse/internal/observability"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-edge data operations
type FollowRepository interface {
	// GetActiveEdge returns (nil, nil) when no active edge exists for the pair.
	GetActiveEdge(ctx context.Context, followerID, followeeID uint) (*models.FollowEdge, error)
	Create(ctx context.Context, edge *models.FollowEdge) error
	Delete(ctx context.Context, edgeID uint) error
	ListFollowers(ctx context.Context, userID uint, params ListParams) ([]models.User, error)
	ListFollowing(ctx context.Context, userID uint, params ListParams) ([]models.User, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) GetActiveEdge(ctx context.Context, followerID, followeeID uint) (*models.FollowEdge, error) {
	var edge models.FollowEdge
	err := r.db.WithContext(ctx).
		Where("followed_by_id = ? AND followed_user_id = ? AND unfollowed = ?",
			followerID, followeeID, false).
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &edge, nil
}

// Create inserts the edge. The composite unique index on the ordered pair is
// the authority on uniqueness; a duplicate-key error from a lost
// check-then-insert race comes back as the same Conflict the lookup produces.
func (r *followRepository) Create(ctx context.Context, edge *models.FollowEdge) error {
	defer observability.ObserveQuery("create", "follow_edges", time.Now())
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Already following this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, edgeID uint) error {
	defer observability.ObserveQuery("delete", "follow_edges", time.Now())
	if err := r.db.WithContext(ctx).Delete(&models.FollowEdge{}, edgeID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, params ListParams) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follow_edges ON follow_edges.followed_by_id = users.id").
		Where("follow_edges.followed_user_id = ? AND follow_edges.unfollowed = ?", userID, false).
		Order("follow_edges.created_on DESC, follow_edges.id DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint, params ListParams) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follow_edges ON follow_edges.followed_user_id = users.id").
		Where("follow_edges.followed_by_id = ? AND follow_edges.unfollowed = ?", userID, false).
		Order("follow_edges.created_on DESC, follow_edges.id DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
