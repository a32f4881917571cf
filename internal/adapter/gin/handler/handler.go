package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "taskflow/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError converts usecase errors to HTTP responses using the
// application error taxonomy. Unrecognized errors surface as a generic 500.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)

	var code, message string
	switch {
	case apperrors.IsNotFound(err):
		code, message = "not_found", err.Error()
	case apperrors.IsAlreadyExists(err):
		code, message = "already_exists", err.Error()
	case apperrors.IsValidation(err):
		code, message = "validation_error", err.Error()
	default:
		code, message = "internal_error", "An internal error occurred"
	}

	c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
