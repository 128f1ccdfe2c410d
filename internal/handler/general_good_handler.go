package handler

import (
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const generalGoodResource = "general_good"

// GeneralGoodRequest carries general good fields; omitted fields are left untouched
type GeneralGoodRequest struct {
	ProductID Optional[uint]   `json:"product_id"`
	Type      Optional[string] `json:"type"`
	Unit      Optional[string] `json:"unit"`
	Notes     Optional[string] `json:"notes"`
}

func (r *GeneralGoodRequest) apply(g *model.GeneralGood) {
	r.ProductID.applyTo(&g.ProductID)
	r.Type.applyTo(&g.Type)
	r.Unit.applyTo(&g.Unit)
	r.Notes.applyTo(&g.Notes)
}

// ListGeneralGoods returns a page of general goods, optionally of one type
func (h *Handler) ListGeneralGoods(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(generalGoodResource, "list")

	filter := store.GeneralGoodFilter{
		ListOptions: listOptions(c),
		Type:        c.QueryParam("type"),
	}

	done := h.track("query")
	goods, total, err := h.store.GeneralGoods.List(c.Request().Context(), filter)
	done()
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}

	log.Info("General goods retrieved", zap.Int("count", len(goods)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"general_goods": goods,
		"pagination":    pagination(filter.ListOptions, total),
	})
}

// GetGeneralGood returns a general good with its product
func (h *Handler) GetGeneralGood(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, generalGoodResource)
	}
	h.metrics.RecordOperation(generalGoodResource, "get")

	done := h.track("query")
	g, err := h.store.GeneralGoods.Get(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}
	return c.JSON(http.StatusOK, g)
}

// GetProductGeneralGood returns the general good details of a product
func (h *Handler) GetProductGeneralGood(c echo.Context) error {
	productID, err := parseID(c)
	if err != nil {
		return badID(c, productResource)
	}
	h.metrics.RecordOperation(generalGoodResource, "get")

	done := h.track("query")
	g, err := h.store.GeneralGoods.GetByProduct(c.Request().Context(), productID)
	done()
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}
	return c.JSON(http.StatusOK, g)
}

// CreateGeneralGood attaches general good details to a GG product
func (h *Handler) CreateGeneralGood(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(generalGoodResource, "create")

	var req GeneralGoodRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, generalGoodResource, err)
	}

	g := model.NewGeneralGood(0, "", "")
	req.apply(g)

	ctx := c.Request().Context()
	done := h.track("insert")
	err := h.store.GeneralGoods.Create(ctx, g)
	done()
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}

	created, err := h.store.GeneralGoods.Get(ctx, g.ID)
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}

	log.Info("General good created",
		zap.Uint("general_good_id", created.ID),
		zap.Uint("product_id", created.ProductID))
	return c.JSON(http.StatusCreated, created)
}

// UpdateGeneralGood applies the supplied fields to an existing general good
func (h *Handler) UpdateGeneralGood(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, generalGoodResource)
	}
	h.metrics.RecordOperation(generalGoodResource, "update")

	var req GeneralGoodRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, generalGoodResource, err)
	}

	ctx := c.Request().Context()
	g, err := h.store.GeneralGoods.Get(ctx, id)
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}
	req.apply(g)

	done := h.track("update")
	err = h.store.GeneralGoods.Update(ctx, g)
	done()
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}

	log.Info("General good updated", zap.Uint("general_good_id", id))
	return c.JSON(http.StatusOK, g)
}

// DeleteGeneralGood removes general good details; the product is kept
func (h *Handler) DeleteGeneralGood(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, generalGoodResource)
	}
	h.metrics.RecordOperation(generalGoodResource, "delete")

	done := h.track("delete")
	err = h.store.GeneralGoods.Delete(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, generalGoodResource, err)
	}

	log.Info("General good deleted", zap.Uint("general_good_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "general good deleted"})
}
