package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home handles GET /.
//
// @Summary      Service banner
// @Tags         home
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, homeResponse{
		Message: "Welcome to the vehicles API",
		Docs:    "/swagger/index.html",
	})
}
