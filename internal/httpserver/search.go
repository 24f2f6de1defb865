package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexloop/vocab_server/internal/service"
	"github.com/lexloop/vocab_server/internal/util"
)

type SearchHTTP struct {
	Svc *service.WordService
}

func (h *SearchHTTP) SearchWords(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	ctx := c.Request().Context()

	total, words, err := h.Svc.SearchWords(ctx, q, from, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "words": words})
}
