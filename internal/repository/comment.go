package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/models"
	"pulse/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPublicID(ctx context.Context, publicID string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint, params ListParams) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

// commentRepository implements CommentRepository
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.ObserveQuery("create", "comments", time.Now())
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByPublicID(ctx context.Context, publicID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Where("public_id = ?", publicID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", publicID)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListByPost pages the comments of one post, joined to author and post in
// batched Preloads.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint, params ListParams) ([]*models.Comment, error) {
	defer observability.ObserveQuery("list", "comments", time.Now())

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order(params.orderClause("comments")).
		Offset(params.Skip).
		Limit(params.Limit).
		Preload("User").
		Preload("Post").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	defer observability.ObserveQuery("update", "comments", time.Now())
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "comments", time.Now())
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
