package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

type WishlistHandler struct {
	wishlists ports.WishlistService
}

func NewWishlistHandler(wishlists ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

type wishlistResponse struct {
	Items []domain.ProductRef `json:"items"`
}

type toggleWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type toggleWishlistResponse struct {
	Added bool                `json:"added"`
	Items []domain.ProductRef `json:"items"`
}

// List returns the caller's wishlist.
//
// @Summary      Get wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  wishlistResponse
// @Router       /wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	items, err := h.wishlists.Items(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishlistResponse{Items: items})
}

// Toggle adds the product when absent and removes it when present.
//
// @Summary      Toggle wishlist entry
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      toggleWishlistRequest  true  "Product to toggle"
// @Success      200   {object}  toggleWishlistResponse
// @Failure      404   {object}  map[string]string
// @Router       /wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req toggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	added, err := h.wishlists.Toggle(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return err
	}

	items, err := h.wishlists.Items(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleWishlistResponse{Added: added, Items: items})
}

// Remove deletes an entry from the wishlist.
//
// @Summary      Remove wishlist entry
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  wishlistResponse
// @Router       /wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	if err := h.wishlists.Remove(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return err
	}
	items, err := h.wishlists.Items(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishlistResponse{Items: items})
}
