// Package context carries per-request values (request ID, scoped logger,
// authenticated caller) across echo handlers and the service layer.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// Keys set on echo.Context.
const (
	keyEchoRequestID = "request_id"

	KeyUserID   = "userID"
	KeyUserName = "userName"
	KeyRoles    = "roles"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLogger
)

// GetRequestID returns the request ID of an echo request. It falls back to the
// ID on the request context, and otherwise assigns a new one so that every
// later call for the same request agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(keyEchoRequestID).(string); ok && id != "" {
		return id
	}

	id := GetRequestIDFromContext(c.Request().Context())
	if id == "" {
		id = uuid.New().String()
	}
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(keyEchoRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when none was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(ctxKeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// GetUserID returns the authenticated user's ID, or "" before authentication.
func GetUserID(c echo.Context) string {
	id, _ := c.Get(KeyUserID).(string)

	return id
}

// GetUserName returns the authenticated user's display name.
func GetUserName(c echo.Context) string {
	name, _ := c.Get(KeyUserName).(string)

	return name
}

// GetRoles returns the roles carried by the caller's token.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(KeyRoles).([]string)

	return roles
}
