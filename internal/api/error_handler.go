package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries the field-keyed error map so the form can
// render every invalid field inline at once.
type validationResponse struct {
	Error  string             `json:"error"`
	Fields domain.FieldErrors `json:"fields"`
}

// upstreamResponse passes an upstream failure's payload through to the
// caller alongside this service's own message.
type upstreamResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 422 with the field-error map.
//   - Passes tagged upstream failures through with their status and payload.
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			_ = c.JSON(http.StatusUnprocessableEntity, validationResponse{
				Error:  "validation failed",
				Fields: fieldErrs,
			})
			return
		}

		var stepErr *domain.StepError
		if errors.As(err, &stepErr) {
			if stepErr.Status == 0 {
				// Transport or parse failure: generic message to the
				// client, real cause to the log only.
				log.Error().Err(stepErr.Err).
					Str("step", stepErr.Step).
					Str("path", c.Path()).
					Msg(stepErr.Message)
				_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
				return
			}
			_ = c.JSON(stepErr.Status, upstreamResponse{
				Error:   stepErr.Message,
				Details: stepErr.Details,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrCheckoutInFlight):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidOperatorKey):
		return http.StatusUnauthorized, "invalid operator key"
	case errors.Is(err, domain.ErrMissingShipmentFields):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
