package handler

import (
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	medicineFormResource = "medicine_form"
	dosageUnitResource   = "dosage_unit"
)

// LookupRequest carries the fields shared by medicine forms and dosage units
type LookupRequest struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

func (r *LookupRequest) apply(name, description *string) {
	r.Name.applyTo(name)
	r.Description.applyTo(description)
}

// ListMedicineForms returns every medicine form ordered by name
func (h *Handler) ListMedicineForms(c echo.Context) error {
	h.metrics.RecordOperation(medicineFormResource, "list")

	done := h.track("query")
	forms, err := h.store.Lookups.ListMedicineForms(c.Request().Context())
	done()
	if err != nil {
		return h.respondError(c, medicineFormResource, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"medicine_forms": forms})
}

// GetMedicineForm returns a single medicine form
func (h *Handler) GetMedicineForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, medicineFormResource)
	}
	h.metrics.RecordOperation(medicineFormResource, "get")

	done := h.track("query")
	f, err := h.store.Lookups.GetMedicineForm(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, medicineFormResource, err)
	}
	return c.JSON(http.StatusOK, f)
}

// CreateMedicineForm validates and stores a new medicine form
func (h *Handler) CreateMedicineForm(c echo.Context) error {
	h.metrics.RecordOperation(medicineFormResource, "create")

	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, medicineFormResource, err)
	}

	var f model.MedicineForm
	req.apply(&f.Name, &f.Description)

	done := h.track("insert")
	err := h.store.Lookups.CreateMedicineForm(c.Request().Context(), &f)
	done()
	if err != nil {
		return h.respondError(c, medicineFormResource, err)
	}

	logger.FromContext(c).Info("Medicine form created", zap.Uint("medicine_form_id", f.ID), zap.String("name", f.Name))
	return c.JSON(http.StatusCreated, f)
}

// UpdateMedicineForm applies the supplied fields to an existing medicine form
func (h *Handler) UpdateMedicineForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, medicineFormResource)
	}
	h.metrics.RecordOperation(medicineFormResource, "update")

	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, medicineFormResource, err)
	}

	ctx := c.Request().Context()
	f, err := h.store.Lookups.GetMedicineForm(ctx, id)
	if err != nil {
		return h.respondError(c, medicineFormResource, err)
	}
	req.apply(&f.Name, &f.Description)

	done := h.track("update")
	err = h.store.Lookups.UpdateMedicineForm(ctx, f)
	done()
	if err != nil {
		return h.respondError(c, medicineFormResource, err)
	}
	return c.JSON(http.StatusOK, f)
}

// DeleteMedicineForm removes a medicine form and every medicine of that form
func (h *Handler) DeleteMedicineForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, medicineFormResource)
	}
	h.metrics.RecordOperation(medicineFormResource, "delete")

	done := h.track("delete")
	err = h.store.Lookups.DeleteMedicineForm(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, medicineFormResource, err)
	}

	logger.FromContext(c).Info("Medicine form deleted", zap.Uint("medicine_form_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "medicine form deleted"})
}

// ListDosageUnits returns every dosage unit ordered by name
func (h *Handler) ListDosageUnits(c echo.Context) error {
	h.metrics.RecordOperation(dosageUnitResource, "list")

	done := h.track("query")
	units, err := h.store.Lookups.ListDosageUnits(c.Request().Context())
	done()
	if err != nil {
		return h.respondError(c, dosageUnitResource, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dosage_units": units})
}

// GetDosageUnit returns a single dosage unit
func (h *Handler) GetDosageUnit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, dosageUnitResource)
	}
	h.metrics.RecordOperation(dosageUnitResource, "get")

	done := h.track("query")
	u, err := h.store.Lookups.GetDosageUnit(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, dosageUnitResource, err)
	}
	return c.JSON(http.StatusOK, u)
}

// CreateDosageUnit validates and stores a new dosage unit
func (h *Handler) CreateDosageUnit(c echo.Context) error {
	h.metrics.RecordOperation(dosageUnitResource, "create")

	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, dosageUnitResource, err)
	}

	var u model.DosageUnit
	req.apply(&u.Name, &u.Description)

	done := h.track("insert")
	err := h.store.Lookups.CreateDosageUnit(c.Request().Context(), &u)
	done()
	if err != nil {
		return h.respondError(c, dosageUnitResource, err)
	}

	logger.FromContext(c).Info("Dosage unit created", zap.Uint("dosage_unit_id", u.ID), zap.String("name", u.Name))
	return c.JSON(http.StatusCreated, u)
}

// UpdateDosageUnit applies the supplied fields to an existing dosage unit
func (h *Handler) UpdateDosageUnit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, dosageUnitResource)
	}
	h.metrics.RecordOperation(dosageUnitResource, "update")

	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, dosageUnitResource, err)
	}

	ctx := c.Request().Context()
	u, err := h.store.Lookups.GetDosageUnit(ctx, id)
	if err != nil {
		return h.respondError(c, dosageUnitResource, err)
	}
	req.apply(&u.Name, &u.Description)

	done := h.track("update")
	err = h.store.Lookups.UpdateDosageUnit(ctx, u)
	done()
	if err != nil {
		return h.respondError(c, dosageUnitResource, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteDosageUnit removes a dosage unit
func (h *Handler) DeleteDosageUnit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, dosageUnitResource)
	}
	h.metrics.RecordOperation(dosageUnitResource, "delete")

	done := h.track("delete")
	err = h.store.Lookups.DeleteDosageUnit(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, dosageUnitResource, err)
	}

	logger.FromContext(c).Info("Dosage unit deleted", zap.Uint("dosage_unit_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "dosage unit deleted"})
}
