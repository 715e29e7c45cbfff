package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "linkup/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// headerCloudTraceContext is set by Google front ends as "TRACE_ID/SPAN_ID;o=OPTIONS".
const headerCloudTraceContext = "X-Cloud-Trace-Context"

// RequestIDMiddleware assigns a request ID to each trigger request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request ID and stores it, with a child logger, in the request context
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithTrigger(c.Request().Context(), requestID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID prefers the client header, then the Cloud trace ID, then a new UUID.
func resolveRequestID(header interface{ Get(string) string }) string {
	if requestID := header.Get(deliverycontext.HeaderXRequestID); requestID != "" {
		return requestID
	}

	if trace := header.Get(headerCloudTraceContext); trace != "" {
		traceID, _, _ := strings.Cut(trace, "/")
		if traceID != "" {
			return traceID
		}
	}

	return uuid.New().String()
}
