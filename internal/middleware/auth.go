// Package middleware provides authentication, logging, rate limiting and
// tracing middleware for the application.
package middleware

import (
	"context"
	"strings"

	"pulse/internal/config"
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys set by AuthRequired.
const (
	LocalsUser   = "currentUser"
	LocalsUserID = "userID"
)

// UserResolver resolves a token subject (email) to a stored user.
// A (nil, nil) return means the subject is unknown.
type UserResolver func(ctx context.Context, email string) (*models.User, error)

// AuthRequired enforces bearer authentication for protected routes.
//
// The token subject carries the user's email; the resolved user is attached to
// the request so downstream handlers never re-derive identity. All credential
// failures map to 401, including a decoded token whose subject no longer
// matches a user.
func AuthRequired(cfg *config.Config, resolve UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization header required"))
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid authorization header format"))
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		email, err := claims.GetSubject()
		if err != nil || email == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token structure - missing subject"))
		}

		user, err := resolve(c.UserContext(), email)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unknown subject"))
		}

		c.Locals(LocalsUser, user)
		c.Locals(LocalsUserID, user.ID)

		return c.Next()
	}
}

// ActingUser returns the authenticated user attached by AuthRequired, or nil.
func ActingUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalsUser).(*models.User)
	return user
}
