package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type placeOrderRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// PlaceOrder converts the caller's cart into an order.
//
// @Summary      Place an order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Shipping details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /checkout [post]
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.checkout.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// ListOrders returns the caller's order history.
//
// @Summary      List own orders
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ordersResponse
// @Router       /orders [get]
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	orders, err := h.checkout.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: orders})
}
