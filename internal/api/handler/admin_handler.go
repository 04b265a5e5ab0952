package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type setBlockedRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Img         string  `json:"img"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}

type adminOrdersResponse struct {
	Orders []ports.AdminOrder `json:"orders"`
}

// ListUsers returns every registered account.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// SetBlocked blocks or unblocks an account.
//
// @Summary      Block or unblock a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "User id"
// @Param        body  body      setBlockedRequest  true  "Blocked flag"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /admin/users/{id}/blocked [put]
func (h *AdminHandler) SetBlocked(c echo.Context) error {
	var req setBlockedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.admin.SetBlocked(c.Request().Context(), c.Param("id"), *req.Blocked)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account and its active session.
//
// @Summary      Delete a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.admin.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateProduct adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  domain.Product
// @Router       /admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	product, err := h.admin.CreateProduct(c.Request().Context(), &domain.Product{
		Name:        req.Name,
		Price:       domain.Amount(req.Price),
		Category:    req.Category,
		Img:         req.Img,
		Description: req.Description,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces a catalog product.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	product, err := h.admin.UpdateProduct(c.Request().Context(), &domain.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Price:       domain.Amount(req.Price),
		Category:    req.Category,
		Img:         req.Img,
		Description: req.Description,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog.
//
// @Summary      Delete a product
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.admin.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrders returns every order across all customers, newest first.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminOrdersResponse
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.admin.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminOrdersResponse{Orders: orders})
}

// UpdateOrderStatus advances an order along its lifecycle.
//
// @Summary      Update order status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId   path      string              true  "Owning user id"
// @Param        orderId  path      string              true  "Order id"
// @Param        body     body      orderStatusRequest  true  "New status"
// @Success      200      {object}  domain.Order
// @Failure      404      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /admin/orders/{userId}/{orderId}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	order, err := h.admin.UpdateOrderStatus(c.Request().Context(),
		c.Param("userId"), c.Param("orderId"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order from its owner's history.
//
// @Summary      Delete an order
// @Tags         admin
// @Security     BearerAuth
// @Param        userId   path  string  true  "Owning user id"
// @Param        orderId  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/orders/{userId}/{orderId} [delete]
func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	if err := h.admin.DeleteOrder(c.Request().Context(), c.Param("userId"), c.Param("orderId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Dashboard returns the aggregate storefront statistics.
//
// @Summary      Dashboard stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
