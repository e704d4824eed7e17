package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// RespondJSON writes a resource as-is; listing and creation endpoints
// return the bare record or array.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		TraceID: c.GetString("trace_id"),
		Errors:  verr.Fields,
	})
}

// HandleServiceError maps service errors onto HTTP responses. Details of
// provider and database failures are logged, never returned.
func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	var verr *ValidationError
	var perr *ProviderError

	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr)
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrPaymentNotConfigured):
		RespondError(c, http.StatusInternalServerError, "Payment provider is not configured")
	case errors.Is(err, ErrAdminNotConfigured):
		RespondError(c, http.StatusInternalServerError, "Admin access is not configured")
	case errors.As(err, &perr):
		log.Error("provider error", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		msg := perr.PublicMessage
		if msg == "" {
			msg = "Upstream provider error"
		}
		RespondError(c, http.StatusInternalServerError, msg)
	case errors.Is(err, ErrMailDelivery):
		log.Error("mail delivery error", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Failed to send message")
	default:
		log.Error("request failed", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
