package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PVL06/OC-P12-Epic/internal/api/metrics"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /event with optional ?support_id= and ?no_support
// filters. Open to any authenticated actor.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        support_id  query     int     false  "Filter by assigned support collaborator"
// @Param        no_support  query     string  false  "Only events without a support collaborator"
// @Success      200         {object}  map[string][]domain.Event
// @Failure      401         {object}  map[string]string
// @Router       /event [get]
func (h *EventHandler) List(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	events, err := h.service.List(c.Request().Context(), ports.EventFilter{
		SupportID: queryInt64(c, "support_id"),
		NoSupport: queryFlag(c, "no_support"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]*domain.Event{"events": events})
}

// Create handles POST /event/create (sales only; contract must be signed,
// owned by the actor, and without an existing event).
func (h *EventHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Create(c.Request().Context(), actor, fields); err != nil {
		return rejected("event", err)
	}

	metrics.MutationsTotal.WithLabelValues("event", "create").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Event created"})
}

// Update handles POST /event/update/{id}.
func (h *EventHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), actor, id, fields); err != nil {
		return rejected("event", err)
	}

	metrics.MutationsTotal.WithLabelValues("event", "update").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Event updated"})
}
