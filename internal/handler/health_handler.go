package handler

import (
	"net/http"

	"inventory-service/pkg/cache"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheck reports whether the service, its database and the optional cache are reachable
func HealthCheck(service string, db *gorm.DB, lookups *cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err == nil {
			err = lookups.Ping(ctx)
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":  "unhealthy",
				"service": service,
				"error":   err.Error(),
			})
		}

		body := echo.Map{
			"status":  "healthy",
			"service": service,
		}
		if lookups != nil {
			body["cache"] = lookups.Stats()
		}
		return c.JSON(http.StatusOK, body)
	}
}
