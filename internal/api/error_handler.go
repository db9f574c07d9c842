package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The CLI
// distinguishes success from failure purely on the status/error key.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
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

	// Permission gate rejections carry the offending field in the message.
	var rej *domain.Rejection
	if errors.As(err, &rej) {
		return http.StatusBadRequest, rej.Error()
	}
	var missing *domain.MissingField
	if errors.As(err, &missing) {
		return http.StatusBadRequest, missing.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrEmptyPayload),
		errors.Is(err, domain.ErrCollaboratorNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrContractNotFound),
		errors.Is(err, domain.ErrContractRefNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrIntegrity):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotYourClient),
		errors.Is(err, domain.ErrNotYourEvent),
		errors.Is(err, domain.ErrClientAssigned),
		errors.Is(err, domain.ErrContractNotSigned):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrDuplicateEvent):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrTooManyLogins):
		return http.StatusTooManyRequests, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal error"
}
