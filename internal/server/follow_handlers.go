package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /protected/users/followRequest/follow/:uid
func (s *Server) FollowUser(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	targetUID := c.Params("uid")
	if targetUID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if err := s.followService.Follow(c.UserContext(), user, targetUID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User followed successfully"})
}

// UnfollowUser handles POST /protected/users/followRequest/unFollow/:uid
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	targetUID := c.Params("uid")
	if targetUID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if err := s.followService.Unfollow(c.UserContext(), user, targetUID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User unfollowed successfully"})
}

// GetFollowers handles GET /protected/users/followRequest/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	params, err := parseListParams(c)
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(c.UserContext(), user, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"followers": followers})
}

// GetFollowing handles GET /protected/users/followRequest/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	params, err := parseListParams(c)
	if err != nil {
		return nil
	}

	following, err := s.followService.Following(c.UserContext(), user, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}
