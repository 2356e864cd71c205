package service

import (
	"context"
	"time"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

// PostService contains business logic for posts, likes and saved posts.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields for creating a post. OriginalPost is the
// public identifier of the reposted post, empty for an original.
type CreatePostInput struct {
	Caption      string   `json:"caption"`
	Body         string   `json:"body"`
	Tags         []string `json:"tags"`
	OriginalPost string   `json:"originalPost"`
}

// UpdatePostInput carries a partial update. Nil pointers leave the field
// untouched; only caption, body and tags are updatable.
type UpdatePostInput struct {
	Caption *string   `json:"caption"`
	Body    *string   `json:"body"`
	Tags    *[]string `json:"tags"`
}

// NewPostService creates a new post service
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates the input, resolves the repost target when given, and
// stores the post. The repost pointer is stored as an internal reference and
// is immutable afterwards; since it must resolve to a post that already
// exists, a repost chain can never form a cycle.
func (s *PostService) CreatePost(ctx context.Context, author *models.User, in CreatePostInput) (*models.PostView, error) {
	if err := validation.ValidateCaption(in.Caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Body != "" {
		if err := validation.ValidateBody(in.Body); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}
	if err := validation.ValidateTags(in.Tags, validation.MaxPostTags); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		UserID:  author.ID,
		User:    author,
		Caption: in.Caption,
		Body:    in.Body,
		Tags:    in.Tags,
	}

	if in.OriginalPost != "" {
		original, err := s.postRepo.GetByPublicID(ctx, in.OriginalPost)
		if err != nil {
			return nil, err
		}
		post.OriginalPostID = &original.ID
		post.OriginalPost = original
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	view := post.View()
	return &view, nil
}

// UpdatePost applies a partial update to caption, body and tags and stamps
// lastEdited. Owner, identifiers, creation time and the repost pointer never
// change through this path.
func (s *PostService) UpdatePost(ctx context.Context, publicID string, in UpdatePostInput) (*models.PostView, error) {
	post, err := s.postRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if in.Caption != nil {
		if err := validation.ValidateCaption(*in.Caption); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Caption = *in.Caption
	}
	if in.Body != nil {
		if *in.Body != "" {
			if err := validation.ValidateBody(*in.Body); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
		}
		post.Body = *in.Body
	}
	if in.Tags != nil {
		if err := validation.ValidateTags(*in.Tags, validation.MaxPostTags); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Tags = *in.Tags
	}

	now := time.Now()
	post.LastEdited = &now

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	view := post.View()
	return &view, nil
}

// GetPost returns the denormalized view of one post. The view, not the raw
// record, is what gets cached; internal references never leave the process.
func (s *PostService) GetPost(ctx context.Context, publicID string) (*models.PostView, error) {
	var view models.PostView
	err := cache.Aside(ctx, cache.PostKey(publicID), &view, cache.PostTTL, func() error {
		post, err := s.postRepo.GetByPublicID(ctx, publicID)
		if err != nil {
			return err
		}
		view = post.View()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// DeletePost removes the post together with its comments, likes and
// saved-post rows. Reposts of it survive with a null original reference.
func (s *PostService) DeletePost(ctx context.Context, publicID string) error {
	post, err := s.postRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, post)
}

// ListOwn pages the acting user's own posts.
func (s *PostService) ListOwn(ctx context.Context, owner *models.User, params repository.ListParams) ([]models.PostView, error) {
	posts, err := s.postRepo.ListByOwner(ctx, owner.ID, params)
	if err != nil {
		return nil, err
	}
	observability.FeedPagesServed.WithLabelValues("own").Inc()
	return postViews(posts), nil
}

// ListFeed pages the global feed.
func (s *PostService) ListFeed(ctx context.Context, params repository.ListParams) ([]models.PostView, error) {
	posts, err := s.postRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}
	observability.FeedPagesServed.WithLabelValues("feed").Inc()
	return postViews(posts), nil
}

// ListSaved pages the posts the acting user has saved.
func (s *PostService) ListSaved(ctx context.Context, user *models.User, params repository.ListParams) ([]models.PostView, error) {
	posts, err := s.postRepo.ListSaved(ctx, user.ID, params)
	if err != nil {
		return nil, err
	}
	observability.FeedPagesServed.WithLabelValues("saved").Inc()
	return postViews(posts), nil
}

// LikePost records a like. Liking an already-liked post is a no-op.
func (s *PostService) LikePost(ctx context.Context, user *models.User, postPublicID string) error {
	post, err := s.postRepo.GetByPublicID(ctx, postPublicID)
	if err != nil {
		return err
	}
	return s.postRepo.Like(ctx, user.ID, post.ID)
}

// UnlikePost removes a like. Removing an absent like is a no-op.
func (s *PostService) UnlikePost(ctx context.Context, user *models.User, postPublicID string) error {
	post, err := s.postRepo.GetByPublicID(ctx, postPublicID)
	if err != nil {
		return err
	}
	return s.postRepo.Unlike(ctx, user.ID, post.ID)
}

// SavePost records a save. Saving an already-saved post is a no-op.
func (s *PostService) SavePost(ctx context.Context, user *models.User, postPublicID string) error {
	post, err := s.postRepo.GetByPublicID(ctx, postPublicID)
	if err != nil {
		return err
	}
	return s.postRepo.SaveForUser(ctx, user.ID, post.ID)
}

// UnsavePost removes a save. Removing an absent save is a no-op.
func (s *PostService) UnsavePost(ctx context.Context, user *models.User, postPublicID string) error {
	post, err := s.postRepo.GetByPublicID(ctx, postPublicID)
	if err != nil {
		return err
	}
	return s.postRepo.UnsaveForUser(ctx, user.ID, post.ID)
}

func postViews(posts []*models.Post) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.View())
	}
	return views
}
