package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// pathID parses the :id route parameter; ok is false for anything that is
// not a positive integer.
func pathID(c echo.Context) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryPage reads ?page=N. An absent page disables pagination.
func queryPage(c echo.Context) (domain.Page, bool) {
	raw := c.QueryParam("page")
	if raw == "" {
		return domain.Page{}, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > domain.MaxPage {
		return domain.Page{}, false
	}
	return domain.Page{Number: n}, true
}
