// Package service contains the business logic of the application.
package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

// FollowService implements the follow-ledger state machine. An ordered pair
// (follower, followee) has at most one active edge; follow and unfollow are
// the only transitions and each direction of a relationship is independent.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new follow service
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates an active edge from the acting user to the target.
// Following yourself is rejected, following an already-followed user is a
// conflict, and the reverse edge is never touched.
func (s *FollowService) Follow(ctx context.Context, follower *models.User, targetUID string) error {
	target, err := s.userRepo.GetByUID(ctx, targetUID)
	if err != nil {
		observability.FollowTransitions.WithLabelValues("follow", "rejected").Inc()
		return err
	}

	if target.ID == follower.ID {
		observability.FollowTransitions.WithLabelValues("follow", "rejected").Inc()
		return models.NewValidationError("You cannot follow yourself")
	}

	existing, err := s.followRepo.GetActiveEdge(ctx, follower.ID, target.ID)
	if err != nil {
		return err
	}
	if existing != nil && existing.Active() {
		observability.FollowTransitions.WithLabelValues("follow", "rejected").Inc()
		return models.NewConflictError("Already following this user")
	}

	edge := &models.FollowEdge{
		FollowedByID:   follower.ID,
		FollowedUserID: target.ID,
		Accepted:       true,
	}
	if err := s.followRepo.Create(ctx, edge); err != nil {
		observability.FollowTransitions.WithLabelValues("follow", "rejected").Inc()
		return err
	}

	observability.FollowTransitions.WithLabelValues("follow", "ok").Inc()
	return nil
}

// Unfollow removes the active edge from the acting user to the target.
func (s *FollowService) Unfollow(ctx context.Context, follower *models.User, targetUID string) error {
	target, err := s.userRepo.GetByUID(ctx, targetUID)
	if err != nil {
		observability.FollowTransitions.WithLabelValues("unfollow", "rejected").Inc()
		return err
	}

	edge, err := s.followRepo.GetActiveEdge(ctx, follower.ID, target.ID)
	if err != nil {
		return err
	}
	if edge == nil || !edge.Active() {
		observability.FollowTransitions.WithLabelValues("unfollow", "rejected").Inc()
		return models.NewValidationError("User is not being followed")
	}

	if err := s.followRepo.Delete(ctx, edge.ID); err != nil {
		observability.FollowTransitions.WithLabelValues("unfollow", "rejected").Inc()
		return err
	}

	observability.FollowTransitions.WithLabelValues("unfollow", "ok").Inc()
	return nil
}

// Followers lists the users following the given user, newest edge first.
func (s *FollowService) Followers(ctx context.Context, user *models.User, params repository.ListParams) ([]models.UserSummary, error) {
	users, err := s.followRepo.ListFollowers(ctx, user.ID, params)
	if err != nil {
		return nil, err
	}
	return summaries(users), nil
}

// Following lists the users the given user follows, newest edge first.
func (s *FollowService) Following(ctx context.Context, user *models.User, params repository.ListParams) ([]models.UserSummary, error) {
	users, err := s.followRepo.ListFollowing(ctx, user.ID, params)
	if err != nil {
		return nil, err
	}
	return summaries(users), nil
}

func summaries(users []models.User) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
