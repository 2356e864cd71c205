package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations.
//
// List operations implement the storage half of the aggregation pipeline:
// scope filter, then ORDER BY creation time, then OFFSET/LIMIT on the primary
// set, with reference joins done as batched Preloads (one extra query per
// association, never one per row).
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByPublicID(ctx context.Context, publicID string) (*models.Post, error)
	ListByOwner(ctx context.Context, ownerID uint, params ListParams) ([]*models.Post, error)
	ListAll(ctx context.Context, params ListParams) ([]*models.Post, error)
	ListSaved(ctx context.Context, userID uint, params ListParams) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, post *models.Post) error
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	SaveForUser(ctx context.Context, userID, postID uint) error
	UnsaveForUser(ctx context.Context, userID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("create", "posts", time.Now())
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByPublicID(ctx context.Context, publicID string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("OriginalPost").
		Where("public_id = ?", publicID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", publicID)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint, params ListParams) ([]*models.Post, error) {
	return r.list(ctx, params, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID)
	})
}

func (r *postRepository) ListAll(ctx context.Context, params ListParams) ([]*models.Post, error) {
	return r.list(ctx, params, nil)
}

func (r *postRepository) ListSaved(ctx context.Context, userID uint, params ListParams) ([]*models.Post, error) {
	return r.list(ctx, params, func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN saved_posts ON saved_posts.post_id = posts.id").
			Where("saved_posts.user_id = ?", userID)
	})
}

// list runs the shared filter -> sort -> paginate -> batched-join sequence.
func (r *postRepository) list(ctx context.Context, params ListParams, scope func(*gorm.DB) *gorm.DB) ([]*models.Post, error) {
	defer observability.ObserveQuery("list", "posts", time.Now())

	var posts []*models.Post
	query := r.db.WithContext(ctx).Model(&models.Post{})
	if scope != nil {
		query = scope(query)
	}
	err := query.
		Order(params.orderClause("posts")).
		Offset(params.Skip).
		Limit(params.Limit).
		Preload("User").
		Preload("OriginalPost").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("update", "posts", time.Now())
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.PublicID)
	return nil
}

// Delete removes the post and, per the cascade policy, its comments, likes and
// saved-post rows; reposts of it keep a null original reference.
func (r *postRepository) Delete(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("delete", "posts", time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).
			Where("original_post_id = ?", post.ID).
			Update("original_post_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, post.ID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.PublicID)
	return nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	// ON CONFLICT DO NOTHING keeps concurrent double-likes from erroring;
	// the unique index on (user_id, post_id) carries the invariant.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&models.Like{UserID: userID, PostID: postID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) SaveForUser(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&models.SavedPost{UserID: userID, PostID: postID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) UnsaveForUser(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.SavedPost{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
