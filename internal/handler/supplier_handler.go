package handler

import (
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const supplierResource = "supplier"

// SupplierRequest carries supplier fields; omitted fields are left untouched
type SupplierRequest struct {
	Name            Optional[string] `json:"name"`
	Address         Optional[string] `json:"address"`
	TelephoneNumber Optional[string] `json:"telephone_number"`
	MobileNumber    Optional[string] `json:"mobile_number"`
	EmailAddress    Optional[string] `json:"email_address"`
	ContactPerson   Optional[string] `json:"contact_person"`
	Remarks         Optional[string] `json:"remarks"`
}

func (r *SupplierRequest) apply(s *model.Supplier) {
	r.Name.applyTo(&s.Name)
	r.Address.applyTo(&s.Address)
	r.TelephoneNumber.applyTo(&s.TelephoneNumber)
	r.MobileNumber.applyTo(&s.MobileNumber)
	r.EmailAddress.applyTo(&s.EmailAddress)
	r.ContactPerson.applyTo(&s.ContactPerson)
	r.Remarks.applyTo(&s.Remarks)
}

// ListSuppliers returns a page of suppliers, optionally searched by name or contact person
func (h *Handler) ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(supplierResource, "list")

	filter := store.SupplierFilter{
		ListOptions: listOptions(c),
		Search:      c.QueryParam("search"),
	}

	done := h.track("query")
	suppliers, total, err := h.store.Suppliers.List(c.Request().Context(), filter)
	done()
	if err != nil {
		return h.respondError(c, supplierResource, err)
	}

	log.Info("Suppliers retrieved", zap.Int("count", len(suppliers)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"suppliers":  suppliers,
		"pagination": pagination(filter.ListOptions, total),
	})
}

// GetSupplier returns a single supplier
func (h *Handler) GetSupplier(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, supplierResource)
	}
	h.metrics.RecordOperation(supplierResource, "get")

	done := h.track("query")
	s, err := h.store.Suppliers.Get(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, supplierResource, err)
	}
	return c.JSON(http.StatusOK, s)
}

// CreateSupplier validates and stores a new supplier
func (h *Handler) CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(supplierResource, "create")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, supplierResource, err)
	}

	var s model.Supplier
	req.apply(&s)

	done := h.track("insert")
	err := h.store.Suppliers.Create(c.Request().Context(), &s)
	done()
	if err != nil {
		return h.respondError(c, supplierResource, err)
	}

	log.Info("Supplier created", zap.Uint("supplier_id", s.ID), zap.String("name", s.Name))
	return c.JSON(http.StatusCreated, s)
}

// UpdateSupplier applies the supplied fields to an existing supplier
func (h *Handler) UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, supplierResource)
	}
	h.metrics.RecordOperation(supplierResource, "update")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, supplierResource, err)
	}

	ctx := c.Request().Context()
	s, err := h.store.Suppliers.Get(ctx, id)
	if err != nil {
		return h.respondError(c, supplierResource, err)
	}
	req.apply(s)

	done := h.track("update")
	err = h.store.Suppliers.Update(ctx, s)
	done()
	if err != nil {
		return h.respondError(c, supplierResource, err)
	}

	log.Info("Supplier updated", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, s)
}

// DeleteSupplier removes a supplier
func (h *Handler) DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, supplierResource)
	}
	h.metrics.RecordOperation(supplierResource, "delete")

	done := h.track("delete")
	err = h.store.Suppliers.Delete(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, supplierResource, err)
	}

	log.Info("Supplier deleted", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "supplier deleted"})
}
