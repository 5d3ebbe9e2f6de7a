package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

var logger = zap.NewNop()

// SetLogger installs the logger used for unexpected errors.
// Called once during application wiring.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// Anything else is treated as an unexpected failure: logged in full,
// returned as a generic 500 with no internal detail leaked.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	logger.Error("unexpected error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
