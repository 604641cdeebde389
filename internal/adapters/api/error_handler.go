package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		slog.Error("Unhandled error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ConfigurationError:
		statusCode = http.StatusPreconditionFailed
		message = appErr.Message
	case errorspkg.GeolocationError:
		statusCode = http.StatusServiceUnavailable
		message = appErr.Message
	case errorspkg.ExternalAPIError:
		statusCode = http.StatusBadGateway
		message = appErr.Message
	case errorspkg.DatabaseError:
		statusCode = http.StatusServiceUnavailable
		message = "Preference store unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "path", c.FullPath(), "status", statusCode)
	}

	c.JSON(statusCode, ErrorResponse{Error: message, Type: appErr.Type.String()})
}

// bindingError turns a gin binding failure into a validation error naming
// the offending fields
func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errorspkg.NewValidationError("Invalid request format")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return errorspkg.NewValidationError("invalid fields: " + strings.Join(fields, ", "))
}
