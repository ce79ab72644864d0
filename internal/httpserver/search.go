package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/es"
	"github.com/estofados/outlet/internal/logging"
)

type SearchHandler struct {
	// ES may be nil when no cluster is configured; the endpoint then
	// reports unavailability instead of failing at startup.
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return badRequest(c, "q is required")
	}

	if h.ES == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorBody{Kind: "unavailable", Detail: "search is not configured"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := paginate(page, size)

	ctx := c.Request().Context()
	total, products, err := es.SearchProducts(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		logging.FromContext(ctx).Error("search error", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorBody{Kind: "internal", Detail: "search failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}

func paginate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return (page - 1) * size, size
}
