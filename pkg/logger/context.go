package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey      contextKey = "logger"
	contextKeyEcho            = "logger"
)

// FromContext retrieves the request logger from the Echo context
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(contextKeyEcho).(*zap.Logger); ok {
		return l
	}
	return FromCtx(c.Request().Context())
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the logger from a plain context, falling back to the global one
func FromCtx(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}
