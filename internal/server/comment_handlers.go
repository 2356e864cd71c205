package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /protected/posts/comments/addComment/:postId
func (s *Server) AddComment(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req service.CreateCommentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.commentService.AddComment(c.UserContext(), user, c.Params("postId"), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"comment": view})
}

// UpdateComment handles PUT /protected/posts/comments/updateComment/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	var req service.UpdateCommentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.commentService.UpdateComment(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"comment": view})
}

// DeleteComment handles DELETE /protected/posts/comments/deleteComment/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	if err := s.commentService.DeleteComment(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}

// GetComments handles GET /protected/posts/comments/getComments/:postId
func (s *Server) GetComments(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.UserContext(), c.Params("postId"), params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}
