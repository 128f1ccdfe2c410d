package handler

import (
	"net/http"
	"strconv"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const medicineResource = "medicine"

// MedicineRequest carries medicine fields; omitted fields are left untouched
type MedicineRequest struct {
	ProductID        Optional[uint]               `json:"product_id"`
	GenericName      Optional[string]             `json:"generic_name"`
	Dosage           Optional[string]             `json:"dosage"`
	FormID           Optional[uint]               `json:"form_id"`
	Usage            Optional[string]             `json:"usage"`
	SideEffects      Optional[string]             `json:"side_effects"`
	PrescriptionType Optional[model.MedicineType] `json:"prescription_type"`
}

func (r *MedicineRequest) apply(m *model.Medicine) {
	r.ProductID.applyTo(&m.ProductID)
	r.GenericName.applyTo(&m.GenericName)
	r.Dosage.applyTo(&m.Dosage)
	r.FormID.applyTo(&m.FormID)
	r.Usage.applyTo(&m.Usage)
	r.SideEffects.applyTo(&m.SideEffects)
	r.PrescriptionType.applyTo(&m.PrescriptionType)
}

type medicineResponse struct {
	*model.Medicine
	PrescriptionTypeDisplay string `json:"prescription_type_display"`
}

func newMedicineResponse(m *model.Medicine) medicineResponse {
	return medicineResponse{Medicine: m, PrescriptionTypeDisplay: m.PrescriptionTypeDisplay()}
}

// ListMedicines returns a page of medicines filtered by prescription type, form and generic name
func (h *Handler) ListMedicines(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(medicineResource, "list")

	filter := store.MedicineFilter{
		ListOptions:      listOptions(c),
		PrescriptionType: model.MedicineType(c.QueryParam("prescription_type")),
		Search:           c.QueryParam("search"),
	}
	if raw := c.QueryParam("form_id"); raw != "" {
		formID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			log.Warn("Invalid form_id parameter", zap.String("value", raw), zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form_id"})
		}
		filter.FormID = uint(formID)
	}

	done := h.track("query")
	medicines, total, err := h.store.Medicines.List(c.Request().Context(), filter)
	done()
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}

	items := make([]medicineResponse, len(medicines))
	for i := range medicines {
		items[i] = newMedicineResponse(&medicines[i])
	}

	log.Info("Medicines retrieved", zap.Int("count", len(items)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"medicines":  items,
		"pagination": pagination(filter.ListOptions, total),
	})
}

// GetMedicine returns a medicine with its product and form
func (h *Handler) GetMedicine(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, medicineResource)
	}
	h.metrics.RecordOperation(medicineResource, "get")

	done := h.track("query")
	m, err := h.store.Medicines.Get(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}
	return c.JSON(http.StatusOK, newMedicineResponse(m))
}

// GetProductMedicine returns the medicine details of a product
func (h *Handler) GetProductMedicine(c echo.Context) error {
	productID, err := parseID(c)
	if err != nil {
		return badID(c, productResource)
	}
	h.metrics.RecordOperation(medicineResource, "get")

	done := h.track("query")
	m, err := h.store.Medicines.GetByProduct(c.Request().Context(), productID)
	done()
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}
	return c.JSON(http.StatusOK, newMedicineResponse(m))
}

// CreateMedicine attaches medicine details to a MEDICINE product
func (h *Handler) CreateMedicine(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(medicineResource, "create")

	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, medicineResource, err)
	}

	m := model.NewMedicine(0, 0, "", "")
	req.apply(m)

	ctx := c.Request().Context()
	done := h.track("insert")
	err := h.store.Medicines.Create(ctx, m)
	done()
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}

	created, err := h.store.Medicines.Get(ctx, m.ID)
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}

	log.Info("Medicine created",
		zap.Uint("medicine_id", created.ID),
		zap.Uint("product_id", created.ProductID),
		zap.String("generic_name", created.GenericName))
	return c.JSON(http.StatusCreated, newMedicineResponse(created))
}

// UpdateMedicine applies the supplied fields to an existing medicine
func (h *Handler) UpdateMedicine(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, medicineResource)
	}
	h.metrics.RecordOperation(medicineResource, "update")

	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, medicineResource, err)
	}

	ctx := c.Request().Context()
	m, err := h.store.Medicines.Get(ctx, id)
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}
	req.apply(m)

	done := h.track("update")
	err = h.store.Medicines.Update(ctx, m)
	done()
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}

	updated, err := h.store.Medicines.Get(ctx, id)
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}

	log.Info("Medicine updated", zap.Uint("medicine_id", id))
	return c.JSON(http.StatusOK, newMedicineResponse(updated))
}

// DeleteMedicine removes medicine details; the product is kept
func (h *Handler) DeleteMedicine(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, medicineResource)
	}
	h.metrics.RecordOperation(medicineResource, "delete")

	done := h.track("delete")
	err = h.store.Medicines.Delete(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, medicineResource, err)
	}

	log.Info("Medicine deleted", zap.Uint("medicine_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "medicine deleted"})
}
