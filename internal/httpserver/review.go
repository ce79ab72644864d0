package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/service"
)

type ReviewHandler struct {
	Svc *service.ReviewService
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews, err := h.Svc.Reviews(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req service.ReviewInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	review, err := h.Svc.CreateReview(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) CreateContact(c echo.Context) error {
	var req service.ContactInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	if _, err := h.Svc.CreateContact(c.Request().Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Message received",
	})
}
