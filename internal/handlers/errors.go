package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Validation problems carry the offending field, invalid state transitions
// become conflicts so the admin UI can refresh and retry.
func respondServiceError(c *gin.Context, err error) {
	if vErr, ok := services.AsValidationError(err); ok {
		response.ValidationFailed(c, "validation failed", map[string]string{vErr.Field: vErr.Message})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	if errors.Is(err, services.ErrInvalidState) {
		response.Conflict(c, err.Error())
		return
	}
	response.ServerError(c, err.Error())
}
