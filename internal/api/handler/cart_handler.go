package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// CartHandler exposes the cart synchronizer over HTTP. Mutations respond
// with the refreshed cart so clients can render without a second request.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartResponse struct {
	Items []domain.CartLine `json:"items"`
	Count int               `json:"count"`
	Total domain.Amount     `json:"total"`
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) respondCart(c echo.Context, userID string) error {
	view, err := h.carts.View(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Items: view.Items, Count: view.Count, Total: view.Total})
}

// View returns the caller's current cart.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Router       /cart [get]
func (h *CartHandler) View(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	return h.respondCart(c, userID)
}

// Add puts a product in the cart, incrementing the quantity when the
// product is already there.
//
// @Summary      Add product to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product to add"
// @Success      200   {object}  cartResponse
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.carts.Add(c.Request().Context(), userID, req.ProductID); err != nil {
		return err
	}
	return h.respondCart(c, userID)
}

// UpdateQuantity sets a cart line's quantity. Values below 1 are ignored.
//
// @Summary      Update cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string                 true  "Product id"
// @Param        body       body      updateQuantityRequest  true  "New quantity"
// @Success      200        {object}  cartResponse
// @Router       /cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.carts.UpdateQuantity(c.Request().Context(), userID, c.Param("productId"), req.Quantity); err != nil {
		return err
	}
	return h.respondCart(c, userID)
}

// Remove deletes a line from the cart.
//
// @Summary      Remove product from cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  cartResponse
// @Router       /cart/items/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	if err := h.carts.Remove(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return err
	}
	return h.respondCart(c, userID)
}

// Clear empties the cart.
//
// @Summary      Clear cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Router       /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	if err := h.carts.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return h.respondCart(c, userID)
}
