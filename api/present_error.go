package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/shelterhub/shelter-backend/dto"
	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

// presentError renders err as a structured API error and reports whether a
// response was written. Domain errors carry their own message; anything else
// is logged in full and rendered as an opaque 500 so store error text never
// reaches callers.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status, code := http.StatusInternalServerError, dto.InternalError
	switch {
	case errors.Is(err, models.ErrEventCapacityExceeded):
		status, code = http.StatusBadRequest, dto.EventCapacityExceeded
	case errors.Is(err, models.ErrDuplicateVolunteerIds):
		status, code = http.StatusBadRequest, dto.DuplicateVolunteerIds
	case errors.Is(err, models.BadParameterError):
		status, code = http.StatusBadRequest, dto.BadParameter
	case errors.Is(err, models.UnAuthorizedError):
		status, code = http.StatusUnauthorized, dto.Unauthorized
	case errors.Is(err, models.ForbiddenError):
		status, code = http.StatusForbidden, dto.Forbidden
	case errors.Is(err, models.NotFoundError):
		status, code = http.StatusNotFound, dto.NotFound
	case errors.Is(err, models.ConflictError):
		status, code = http.StatusConflict, dto.Conflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unexpected error handling request",
			"error", err.Error(), "path", c.Request.URL.Path)
		message = "an unexpected error occurred"
	}

	c.JSON(status, dto.APIErrorResponse{
		Message:   message,
		ErrorCode: code,
	})
	return true
}
