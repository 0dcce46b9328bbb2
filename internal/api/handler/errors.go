package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// writeError renders known domain errors. Anything else is returned so the
// central error handler can log it and answer 500.
func writeError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, validationResponse{Messages: ve.Messages})
	case domain.IsNotFound(err):
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.NoContent(http.StatusUnauthorized)
	}
	return err
}

func badRequest(c echo.Context, messages ...string) error {
	return c.JSON(http.StatusBadRequest, validationResponse{Messages: messages})
}
