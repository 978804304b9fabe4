package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/api/metrics"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// CatalogHandler covers the home page (listing with category filter and
// search), the product detail page, and the admin product CRUD panel.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /v1/products?category=&q=.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Exact category filter"
// @Param        q         query     string  false  "Title/description search"
// @Success      200       {object}  productListResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ListFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	}
	products, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := productListResponse{Products: make([]productResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Categories handles GET /v1/products/categories.
//
// @Summary      List distinct categories
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /v1/products/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Categories: categories})
}

// Get handles GET /v1/products/:id — the product detail page.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	product, err := h.catalog.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// Create handles POST /v1/admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.catalog.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /v1/admin/products/:id. Updating an id that does
// not exist leaves the catalog untouched.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  productResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/products/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.catalog.Update(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /v1/admin/products/:id. Absent ids are a no-op;
// existing cart references are left to degrade at render time.
//
// @Summary      Delete a product
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/products/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
