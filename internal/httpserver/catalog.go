package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/service"
)

type CatalogHandler struct {
	Svc *service.CatalogService
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.Svc.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req service.CategoryInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	category, err := h.Svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	products, err := h.Svc.Products(c.Request().Context(), c.QueryParam("category_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.Svc.ProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req service.ProductInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	product, err := h.Svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}
