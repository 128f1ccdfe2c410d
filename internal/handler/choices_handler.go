package handler

import (
	"net/http"

	"inventory-service/internal/model"

	"github.com/labstack/echo/v4"
)

// ListChoices returns the allowed values and labels of every enumerated field
func (h *Handler) ListChoices(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"category":          model.ProductCategoryChoices(),
		"prescription_type": model.MedicineTypeChoices(),
	})
}
