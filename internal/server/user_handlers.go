package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserInfo handles GET /protected/users/getUserInfo
func (s *Server) GetUserInfo(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	profile, err := s.userService.PublicProfile(c.UserContext(), user.UID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": profile})
}

// UpdateUser handles PUT /protected/users/updateUser
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.userService.UpdateProfile(c.UserContext(), user, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": updated})
}
