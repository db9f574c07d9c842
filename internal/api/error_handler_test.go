package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/client/create", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest, "email invalid !"},
		{"invalid password", domain.ErrInvalidPassword, http.StatusBadRequest, "Invalid password !"},
		{"empty payload", domain.ErrEmptyPayload, http.StatusBadRequest, "No data provided"},
		{"unknown client", domain.ErrClientNotFound, http.StatusBadRequest, "Invalid client"},
		{"unknown contract ref", domain.ErrContractRefNotFound, http.StatusBadRequest, "Invalid contract id"},
		{"integrity", domain.ErrIntegrity, http.StatusBadRequest, "Integrity error"},
		{"not your client", domain.ErrNotYourClient, http.StatusForbidden, "Not your client"},
		{"not your event", domain.ErrNotYourEvent, http.StatusForbidden, "Not your event"},
		{"client assigned", domain.ErrClientAssigned, http.StatusForbidden, "Client already assigned"},
		{"contract not signed", domain.ErrContractNotSigned, http.StatusForbidden, "Contract not signed"},
		{"duplicate event", domain.ErrDuplicateEvent, http.StatusConflict, "Event already exists for this contract"},
		{"throttled", domain.ErrTooManyLogins, http.StatusTooManyRequests, "Too many login attempts"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"error":"`+tc.body+`"`) {
				t.Errorf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_SanitizerRejections(t *testing.T) {
	rec := renderError(t, &domain.Rejection{Kind: domain.RejectInvalidValue, Field: "email"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Invalid value for field: email"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}

	rec = renderError(t, &domain.MissingField{Field: "company"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Missing field: company"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "No connected !"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"No connected !"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	rec := renderError(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	// Internal causes never leak into the envelope.
	if !strings.Contains(rec.Body.String(), `"error":"Internal error"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
