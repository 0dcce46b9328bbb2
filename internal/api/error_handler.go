package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// errorResponse is the envelope for gate, routing and unexpected failures.
type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Messages []string `json:"messages"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as {"messages": [...]} with 400.
//   - Answers 404 and 401 with an empty body for missing records and bad credentials.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			_ = c.JSON(http.StatusBadRequest, validationResponse{Messages: ve.Messages})
			return
		case domain.IsNotFound(err):
			_ = c.NoContent(http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.NoContent(http.StatusUnauthorized)
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth gate, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
