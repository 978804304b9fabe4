package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/api/metrics"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// CartHandler covers the cart page. Every mutation responds with the
// refreshed cart view, mirroring the full fragment rebuild the page
// does after each change.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineResponse struct {
	ProductID       string           `json:"product_id"`
	Quantity        int              `json:"quantity"`
	Product         *productResponse `json:"product,omitempty"`
	Subtotal        float64          `json:"subtotal"`
	SubtotalDisplay string           `json:"subtotal_display"`
	Missing         bool             `json:"missing,omitempty"`
}

type cartResponse struct {
	Items        []cartLineResponse `json:"items"`
	Total        float64            `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

func toCartResponse(detail *ports.CartDetail) cartResponse {
	resp := cartResponse{
		Items:        make([]cartLineResponse, 0, len(detail.Lines)),
		Total:        detail.Total,
		TotalDisplay: formatCLP(detail.Total),
	}
	for _, line := range detail.Lines {
		lr := cartLineResponse{
			ProductID:       line.Item.ProductID,
			Quantity:        line.Item.Quantity,
			Subtotal:        line.Subtotal,
			SubtotalDisplay: formatCLP(line.Subtotal),
			Missing:         line.Missing,
		}
		if line.Product != nil {
			pr := toProductResponse(*line.Product)
			lr.Product = &pr
		}
		resp.Items = append(resp.Items, lr)
	}
	return resp
}

func (h *CartHandler) render(c echo.Context) error {
	detail, err := h.cart.Detail(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(detail))
}

// Get handles GET /v1/cart — the joined cart view for the active
// identity (guest when not logged in).
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	return h.render(c)
}

// AddItem handles POST /v1/cart/items — add-to-cart from the catalog or
// detail page. Repeated adds bump the quantity of the existing line.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Product reference"
// @Success      200   {object}  cartResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.cart.Add(c.Request().Context(), ctxSession(c), req.ProductID); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	return h.render(c)
}

// SetQuantity handles PUT /v1/cart/items/:productID. Values below 1 are
// clamped to 1 before being applied, as the quantity input does.
//
// @Summary      Set the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productID  path      string              true  "Product id"
// @Param        body       body      setQuantityRequest  true  "New quantity"
// @Success      200        {object}  cartResponse
// @Router       /v1/cart/items/{productID} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}
	if err := h.cart.SetQuantity(c.Request().Context(), ctxSession(c), c.Param("productID"), qty); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("set_quantity").Inc()
	return h.render(c)
}

// RemoveItem handles DELETE /v1/cart/items/:productID.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        productID  path      string  true  "Product id"
// @Success      200        {object}  cartResponse
// @Router       /v1/cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cart.Remove(c.Request().Context(), ctxSession(c), c.Param("productID")); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return h.render(c)
}

// Clear handles DELETE /v1/cart — empties the active cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context(), ctxSession(c)); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("clear").Inc()
	return h.render(c)
}
