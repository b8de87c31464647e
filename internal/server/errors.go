package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
	"github.com/mannyyy07/quickqr/internal/observability/logger"
	"github.com/mannyyy07/quickqr/internal/qr"
	"go.uber.org/zap"
)

// APIError is the JSON error envelope returned by every handler.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Code }

var ErrTooManyRequests = &APIError{
	Status:  http.StatusTooManyRequests,
	Code:    "rate_limited",
	Message: "too many requests",
}

func invalidRequestError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "invalid request body",
	}
}

func newValidationError(code, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: message,
	}
}

// AbortWithError maps domain errors onto the JSON envelope. Unrecognized
// errors are logged and reported as a generic 500.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.Is(err, eventdomain.ErrInvalidKind):
		apiErr = newValidationError("invalid_kind", "kind must be one of page_visit, qr_generated, qr_downloaded")
	case errors.Is(err, eventdomain.ErrMissingSession):
		apiErr = newValidationError("missing_session_id", "sessionId is required")
	case errors.Is(err, qr.ErrRenderFailed):
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "qr_render_failed",
			Message: "could not generate QR code",
		}
	default:
		logger.FromContext(c.Request.Context()).Error("request failed", zap.Error(err))
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "internal_error",
			Message: "internal server error",
		}
	}
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}
