package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/PVL06/OC-P12-Epic/internal/api/metrics"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// bindFields decodes a raw JSON field map. Shapes are NOT validated here;
// every map goes through the permission sanitizer inside the service.
func bindFields(c echo.Context) (map[string]any, error) {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return fields, nil
}

// pathID parses the {id} path segment; idErr is the entity's historical
// invalid-id error, returned for unparseable ids as well as unknown ones.
func pathID(c echo.Context, idErr error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, idErr
	}
	return id, nil
}

// queryInt64 parses an optional numeric query filter; 0 when absent or bad.
func queryInt64(c echo.Context, name string) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// queryFlag reports whether a value-less query filter such as ?unassigned is
// present.
func queryFlag(c echo.Context, name string) bool {
	_, ok := c.QueryParams()[name]
	return ok
}

// rejected counts permission-gate refusals on the mutating endpoints and
// passes the error through untouched.
func rejected(entity string, err error) error {
	var rej *domain.Rejection
	switch {
	case errors.As(err, &rej):
		metrics.SanitizeRejectionsTotal.WithLabelValues(entity, string(rej.Kind)).Inc()
	case errors.Is(err, domain.ErrUnauthorized):
		metrics.SanitizeRejectionsTotal.WithLabelValues(entity, "unauthorized").Inc()
	case errors.Is(err, domain.ErrEmptyPayload):
		metrics.SanitizeRejectionsTotal.WithLabelValues(entity, "empty").Inc()
	}
	return err
}
