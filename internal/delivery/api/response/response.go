package response

import (
	"net/http"

	deliverycontext "linkup/internal/delivery/context"
	domainerrors "linkup/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful trigger responses
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Summary   any    `json:"summary,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`          // Human-readable error message
	Code      string `json:"code,omitempty"` // Machine-readable error code, e.g., "METHOD_NOT_ALLOWED"
	RequestID string `json:"request_id,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, summary any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success:   true,
		Message:   message,
		Summary:   summary,
		RequestID: requestID(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      errorCode,
		RequestID: requestID(c),
	})
}

// MethodNotAllowed returns a 405 error
func MethodNotAllowed(c echo.Context) error {
	return HandleAppError(c, domainerrors.ErrMethodNotAllowed)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}

func requestID(c echo.Context) string {
	if id, ok := c.Get(string(deliverycontext.KeyRequestID)).(string); ok {
		return id
	}

	return ""
}
