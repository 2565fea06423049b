// Package context carries per-request values between the echo pipeline and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID set by the RequestID middleware, or "" outside a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// SetRequestID stores the request ID on the echo context and the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), keyRequestID, requestID)))
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// EnrichLogger adds attributes to the request-scoped logger, creating one from fallback if needed.
func EnrichLogger(c echo.Context, fallback *slog.Logger, args ...any) {
	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(args...)
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}
