package middleware

import (
	"inventory-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HeaderRequestID is the header carrying the request correlation id
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware adds a unique request ID to each request, reusing the caller's id when present
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request().Header.Set(HeaderRequestID, requestID)
		}

		c.Set("request_id", requestID)
		c.Response().Header().Set(HeaderRequestID, requestID)

		logger.SetEcho(c, logger.GetLogger().With(zap.String("request_id", requestID)))

		return next(c)
	}
}
