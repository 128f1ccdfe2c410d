// Package handler exposes the inventory records over a JSON API.
package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves the inventory API
type Handler struct {
	store   *store.Store
	metrics *prometheus.Metrics
}

// New creates a handler backed by s
func New(s *store.Store, metrics *prometheus.Metrics) *Handler {
	return &Handler{store: s, metrics: metrics}
}

// Register mounts every inventory route on api
func (h *Handler) Register(api *echo.Group) {
	api.GET("/choices", h.ListChoices)

	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.POST("", h.CreateProduct)
	products.GET("/:id", h.GetProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)
	products.GET("/:id/medicine", h.GetProductMedicine)
	products.GET("/:id/general-good", h.GetProductGeneralGood)

	medicines := api.Group("/medicines")
	medicines.GET("", h.ListMedicines)
	medicines.POST("", h.CreateMedicine)
	medicines.GET("/:id", h.GetMedicine)
	medicines.PUT("/:id", h.UpdateMedicine)
	medicines.DELETE("/:id", h.DeleteMedicine)

	goods := api.Group("/general-goods")
	goods.GET("", h.ListGeneralGoods)
	goods.POST("", h.CreateGeneralGood)
	goods.GET("/:id", h.GetGeneralGood)
	goods.PUT("/:id", h.UpdateGeneralGood)
	goods.DELETE("/:id", h.DeleteGeneralGood)

	forms := api.Group("/medicine-forms")
	forms.GET("", h.ListMedicineForms)
	forms.POST("", h.CreateMedicineForm)
	forms.GET("/:id", h.GetMedicineForm)
	forms.PUT("/:id", h.UpdateMedicineForm)
	forms.DELETE("/:id", h.DeleteMedicineForm)

	units := api.Group("/dosage-units")
	units.GET("", h.ListDosageUnits)
	units.POST("", h.CreateDosageUnit)
	units.GET("/:id", h.GetDosageUnit)
	units.PUT("/:id", h.UpdateDosageUnit)
	units.DELETE("/:id", h.DeleteDosageUnit)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.ListSuppliers)
	suppliers.POST("", h.CreateSupplier)
	suppliers.GET("/:id", h.GetSupplier)
	suppliers.PUT("/:id", h.UpdateSupplier)
	suppliers.DELETE("/:id", h.DeleteSupplier)
}

// track starts a database timer; call the result when the operation is done
func (h *Handler) track(operation string) func() {
	start := time.Now()
	observe := h.metrics.TrackDBOperation(operation)
	return func() { observe(start) }
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// badID answers a request whose :id is not a positive integer
func badID(c echo.Context, resource string) error {
	logger.FromContext(c).Warn("Invalid ID", zap.String("resource", resource), zap.String("id", c.Param("id")))
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid " + resource + " id"})
}

// badBody answers a request whose JSON body could not be decoded
func badBody(c echo.Context, resource string, err error) error {
	logger.FromContext(c).Warn("Invalid request data", zap.String("resource", resource), zap.Error(err))
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
}

func listOptions(c echo.Context) store.ListOptions {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return store.ListOptions{Page: page, Limit: limit}.Normalize()
}

func pagination(opts store.ListOptions, total int64) echo.Map {
	return echo.Map{
		"current_page": opts.Page,
		"limit":        opts.Limit,
		"total":        total,
		"total_pages":  (int(total) + opts.Limit - 1) / opts.Limit,
	}
}

// respondError maps store and validation errors to HTTP responses
func (h *Handler) respondError(c echo.Context, resource string, err error) error {
	log := logger.FromContext(c).With(zap.String("resource", resource))

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]string, 0, len(verr.Fields))
		for field := range verr.Fields {
			h.metrics.RecordValidationFailure(resource, field)
			fields = append(fields, field)
		}
		sort.Strings(fields)
		log.Info("Validation failed", zap.Strings("fields", fields))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, store.ErrNotFound):
		log.Info("Record not found", zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": resource + " not found"})
	case errors.Is(err, store.ErrCategoryMismatch), errors.Is(err, store.ErrAlreadyExtended):
		log.Warn("Conflicting product extension", zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		log.Error("Request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
