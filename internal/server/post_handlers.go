package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /protected/posts/createPost
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.postService.CreatePost(c.UserContext(), user, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"post": view})
}

// UpdatePost handles PUT /protected/posts/updatePost/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID := c.Params("id")

	var req service.UpdatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.postService.UpdatePost(c.UserContext(), postID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"post": view})
}

// GetPost handles GET /protected/posts/getPost/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	view, err := s.postService.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"post": view})
}

// DeletePost handles DELETE /protected/posts/deletePost/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// GetAllPosts handles GET /protected/posts/getAllPosts and pages the acting
// user's own posts.
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	params, err := parseListParams(c)
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListOwn(c.UserContext(), user, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetFeeds handles GET /protected/posts/getFeeds and pages the global feed.
func (s *Server) GetFeeds(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListFeed(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetSavedPosts handles GET /protected/posts/getSavedPosts
func (s *Server) GetSavedPosts(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	params, err := parseListParams(c)
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListSaved(c.UserContext(), user, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// LikePost handles POST /protected/posts/likePost/:id
func (s *Server) LikePost(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	if err := s.postService.LikePost(c.UserContext(), user, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post liked successfully"})
}

// UnlikePost handles DELETE /protected/posts/unlikePost/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	if err := s.postService.UnlikePost(c.UserContext(), user, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post unliked successfully"})
}

// SavePost handles POST /protected/posts/savePost/:id
func (s *Server) SavePost(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	if err := s.postService.SavePost(c.UserContext(), user, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post saved successfully"})
}

// UnsavePost handles DELETE /protected/posts/unsavePost/:id
func (s *Server) UnsavePost(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	if err := s.postService.UnsavePost(c.UserContext(), user, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post unsaved successfully"})
}
