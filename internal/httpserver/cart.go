package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/service"
)

type CartHandler struct {
	Svc *service.CartService
}

func (h *CartHandler) GetCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	cart, err := h.Svc.GetOrCreate(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	cart, err := h.Svc.AddItem(c.Request().Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Item added to cart",
		"cart":    cart,
	})
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	cart, err := h.Svc.RemoveItem(c.Request().Context(), user.ID, c.Param("product_id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Item removed from cart",
		"cart":    cart,
	})
}
