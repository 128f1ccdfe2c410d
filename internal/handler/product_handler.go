package handler

import (
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const productResource = "product"

// ProductRequest carries product fields. Omitted fields keep their default on create
// and their stored value on update; null clears them.
type ProductRequest struct {
	Brand    Optional[string]                `json:"brand"`
	Name     Optional[string]                `json:"name"`
	Category Optional[model.ProductCategory] `json:"category"`
	Status   Optional[string]                `json:"status"`
}

func (r *ProductRequest) apply(p *model.Product) {
	r.Brand.applyTo(&p.Brand)
	r.Name.applyTo(&p.Name)
	r.Category.applyTo(&p.Category)
	r.Status.applyTo(&p.Status)
}

type productResponse struct {
	*model.Product
	CategoryDisplay string `json:"category_display"`
}

func newProductResponse(p *model.Product) productResponse {
	return productResponse{Product: p, CategoryDisplay: p.CategoryDisplay()}
}

// ListProducts returns a page of products filtered by category, status and name
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(productResource, "list")

	filter := store.ProductFilter{
		ListOptions: listOptions(c),
		Category:    model.ProductCategory(c.QueryParam("category")),
		Status:      c.QueryParam("status"),
		Search:      c.QueryParam("search"),
	}

	done := h.track("query")
	products, total, err := h.store.Products.List(c.Request().Context(), filter)
	done()
	if err != nil {
		return h.respondError(c, productResource, err)
	}

	items := make([]productResponse, len(products))
	for i := range products {
		items[i] = newProductResponse(&products[i])
	}

	log.Info("Products retrieved", zap.Int("count", len(items)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"products":   items,
		"pagination": pagination(filter.ListOptions, total),
	})
}

// GetProduct returns a single product
func (h *Handler) GetProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, productResource)
	}
	h.metrics.RecordOperation(productResource, "get")

	done := h.track("query")
	p, err := h.store.Products.Get(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, productResource, err)
	}
	return c.JSON(http.StatusOK, newProductResponse(p))
}

// CreateProduct validates and stores a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.RecordOperation(productResource, "create")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, productResource, err)
	}

	p := model.NewProduct("", "")
	req.apply(p)

	done := h.track("insert")
	err := h.store.Products.Create(c.Request().Context(), p)
	done()
	if err != nil {
		return h.respondError(c, productResource, err)
	}

	log.Info("Product created",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name),
		zap.String("category", string(p.Category)))
	return c.JSON(http.StatusCreated, newProductResponse(p))
}

// UpdateProduct applies the supplied fields to an existing product
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, productResource)
	}
	h.metrics.RecordOperation(productResource, "update")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c, productResource, err)
	}

	ctx := c.Request().Context()
	p, err := h.store.Products.Get(ctx, id)
	if err != nil {
		return h.respondError(c, productResource, err)
	}
	req.apply(p)

	done := h.track("update")
	err = h.store.Products.Update(ctx, p)
	done()
	if err != nil {
		return h.respondError(c, productResource, err)
	}

	log.Info("Product updated", zap.Uint("product_id", p.ID))
	return c.JSON(http.StatusOK, newProductResponse(p))
}

// DeleteProduct removes a product together with its extension
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return badID(c, productResource)
	}
	h.metrics.RecordOperation(productResource, "delete")

	done := h.track("delete")
	err = h.store.Products.Delete(c.Request().Context(), id)
	done()
	if err != nil {
		return h.respondError(c, productResource, err)
	}

	log.Info("Product deleted", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}
