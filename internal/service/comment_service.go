package service

import (
	"context"
	"time"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

// CommentService contains business logic for comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput carries the fields for creating a comment.
type CreateCommentInput struct {
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
}

// UpdateCommentInput carries a partial update. Nil pointers leave the field
// untouched; the target post and identifiers are immutable.
type UpdateCommentInput struct {
	Comment *string   `json:"comment"`
	Tags    *[]string `json:"tags"`
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// AddComment validates the input, resolves the target post, and stores the
// comment. An unknown post is NotFound before any mutation.
func (s *CommentService) AddComment(ctx context.Context, author *models.User, postPublicID string, in CreateCommentInput) (*models.CommentView, error) {
	if err := validation.ValidateComment(in.Comment); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateTags(in.Tags, validation.MaxCommentTags); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.postRepo.GetByPublicID(ctx, postPublicID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:     author.ID,
		User:       author,
		PostID:     post.ID,
		Post:       post,
		Comment:    in.Comment,
		Tags:       in.Tags,
		Visibility: true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	view := comment.View()
	return &view, nil
}

// UpdateComment applies a partial update to text and tags and stamps editedOn.
func (s *CommentService) UpdateComment(ctx context.Context, publicID string, in UpdateCommentInput) (*models.CommentView, error) {
	comment, err := s.commentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if in.Comment != nil {
		if err := validation.ValidateComment(*in.Comment); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		comment.Comment = *in.Comment
	}
	if in.Tags != nil {
		if err := validation.ValidateTags(*in.Tags, validation.MaxCommentTags); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		comment.Tags = *in.Tags
	}

	now := time.Now()
	comment.EditedOn = &now

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	view := comment.View()
	return &view, nil
}

// DeleteComment removes one comment by public identifier.
func (s *CommentService) DeleteComment(ctx context.Context, publicID string) error {
	comment, err := s.commentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, comment.ID)
}

// ListComments pages the comments of one post in the requested order. An
// unknown post is NotFound rather than an empty page.
func (s *CommentService) ListComments(ctx context.Context, postPublicID string, params repository.ListParams) ([]models.CommentView, error) {
	post, err := s.postRepo.GetByPublicID(ctx, postPublicID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID, params)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, comment.View())
	}
	return views, nil
}
