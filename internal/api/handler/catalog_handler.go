package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productPageResponse struct {
	Items      []*domain.Product `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// ListProducts serves one page of the catalog.
//
// @Summary      Browse products
// @Tags         catalog
// @Produce      json
// @Param        search    query     string  false  "Substring match on name or category"
// @Param        category  query     string  false  "Exact category"
// @Param        page      query     int     false  "Page number, 1-based"
// @Param        limit     query     int     false  "Rows per page"
// @Success      200       {object}  productPageResponse
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := ports.ListProductsFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be a number")
		}
		filter.Page = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a number")
		}
		filter.Limit = n
	}

	result, err := h.catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productPageResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// GetProduct serves a single product by id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
