package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/service"
)

// ErrorBody is the uniform failure payload: a machine-readable kind plus
// human-readable detail.
type ErrorBody struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// respondError maps the service error taxonomy onto HTTP statuses. Every
// authentication failure gets the same body regardless of cause.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorBody{Kind: "unauthenticated", Detail: "invalid credentials"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorBody{Kind: "forbidden", Detail: "not authorized"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorBody{Kind: "not_found", Detail: err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusBadRequest, ErrorBody{Kind: "conflict", Detail: err.Error()})
	case errors.Is(err, service.ErrInvalidReference):
		return c.JSON(http.StatusBadRequest, ErrorBody{Kind: "invalid_reference", Detail: err.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorBody{Kind: "validation", Detail: err.Error()})
	default:
		logging.FromContext(c.Request().Context()).Error("internal error", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorBody{Kind: "internal", Detail: "internal server error"})
	}
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{Kind: "validation", Detail: detail})
}
