package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contextKey int

const loggerKey contextKey = iota

// echoLoggerKey is where request middleware stores the request scoped logger
const echoLoggerKey = "logger"

// WithLogger returns a copy of ctx carrying logger
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetEcho stores a request scoped logger on the echo context
func SetEcho(c echo.Context, logger *zap.Logger) {
	c.Set(echoLoggerKey, logger)
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), logger)))
}

// FromContext retrieves the request scoped logger
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(echoLoggerKey).(*zap.Logger); ok {
		return l
	}
	if l, ok := c.Request().Context().Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}
