package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware. A missing
// role means the middleware never ran for this route; fail closed.
func ctxActor(c echo.Context) (domain.Actor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "No connected !")
	}

	id, _ := c.Get("actor_id").(int64)
	name, _ := c.Get("actor_name").(string)

	return domain.Actor{ID: id, Name: name, Role: domain.Role(role)}, nil
}
