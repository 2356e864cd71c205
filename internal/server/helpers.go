package server

import (
	"errors"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// parseListParams extracts limit, skip and sortOrder query parameters.
// Out-of-range values are rejected with a 400 rather than clamped; absent
// values take the documented defaults (10, 0, asc). On failure it writes the
// response and returns errResponseWritten.
func parseListParams(c *fiber.Ctx) (repository.ListParams, error) {
	params := repository.ListParams{
		Limit: defaultPageLimit,
		Skip:  0,
		Sort:  repository.SortAsc,
	}

	if raw := c.Query("limit"); raw != "" {
		limit := c.QueryInt("limit", -1)
		if limit < 1 || limit > maxPageLimit {
			_ = models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("limit must be between 1 and 100"))
			return params, errResponseWritten
		}
		params.Limit = limit
	}

	if raw := c.Query("skip"); raw != "" {
		skip := c.QueryInt("skip", -1)
		if skip < 0 {
			_ = models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("skip must be zero or greater"))
			return params, errResponseWritten
		}
		params.Skip = skip
	}

	if sort := c.Query("sortOrder"); sort != "" {
		if sort != repository.SortAsc && sort != repository.SortDesc {
			_ = models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("sortOrder must be asc or desc"))
			return params, errResponseWritten
		}
		params.Sort = sort
	}

	return params, nil
}

// statusForError maps application error codes to HTTP statuses. Conflicts
// surface as 400 to match the public contract of the follow and signup
// endpoints.
func statusForError(err error) int {
	appErr, ok := err.(*models.AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "VALIDATION_ERROR", "CONFLICT":
		return fiber.StatusBadRequest
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps the error to a status, logs internal faults and writes
// the standard error shape. No fault propagates past the handler un-mapped.
func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		observability.Logger.ErrorContext(c.UserContext(), "request failed",
			"path", c.Path(),
			"error", err.Error(),
		)
	}
	return models.RespondWithError(c, status, err)
}
