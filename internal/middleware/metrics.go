package middleware

import (
	"time"

	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware tracks count and latency of HTTP requests by route
func MetricsMiddleware(metrics *prometheus.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the error response so the recorded status is final
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			metrics.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
