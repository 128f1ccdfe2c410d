package middleware

import (
	"time"

	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLoggerMiddleware writes one structured line per finished request
func RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}

		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		fields := []zap.Field{
			zap.String("method", req.Method),
			zap.String("uri", req.RequestURI),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote_ip", c.RealIP()),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		if ce := logger.FromContext(c).Check(level, "Request completed"); ce != nil {
			ce.Write(fields...)
		}

		return err
	}
}
