// Package context carries the trigger-scoped request ID and logger through a reminder run.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID stores the ID of the trigger that started a run.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the logger tagged with that ID.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID set on c by the request ID middleware,
// or a fresh UUID when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the trigger's request ID, or "" if none was set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the trigger-scoped logger, or fallback when none was set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithTrigger tags ctx with requestID and a logger carrying it, and returns both.
func WithTrigger(ctx context.Context, requestID string, logger *slog.Logger) (context.Context, *slog.Logger) {
	logger = logger.With(slog.String(string(KeyRequestID), requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// Detach keeps the request ID and logger of ctx but drops its cancellation,
// so a run started by an HTTP trigger is not cut short when the caller goes away.
func Detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
