package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PVL06/OC-P12-Epic/internal/api/metrics"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// CollaboratorHandler handles the management-only collaborator endpoints.
type CollaboratorHandler struct {
	service ports.CollaboratorService
}

func NewCollaboratorHandler(service ports.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{service: service}
}

// List handles GET /collab with an optional ?role= filter.
//
// @Summary      List collaborators
// @Tags         collaborators
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Filter by role (management, sales, support)"
// @Success      200   {object}  map[string][]domain.Collaborator
// @Failure      401   {object}  map[string]string
// @Router       /collab [get]
func (h *CollaboratorHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	collabs, err := h.service.List(c.Request().Context(), actor, ports.CollaboratorFilter{
		Role: domain.Role(c.QueryParam("role")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]*domain.Collaborator{"collaborators": collabs})
}

// Create handles POST /collab/create.
//
// @Summary      Create a collaborator
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /collab/create [post]
func (h *CollaboratorHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Create(c.Request().Context(), actor, fields); err != nil {
		return rejected("collaborator", err)
	}

	metrics.MutationsTotal.WithLabelValues("collaborator", "create").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "New collaborator created"})
}

// Update handles POST /collab/update/{id}.
func (h *CollaboratorHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrCollaboratorNotFound)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), actor, id, fields); err != nil {
		return rejected("collaborator", err)
	}

	metrics.MutationsTotal.WithLabelValues("collaborator", "update").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Collaborator updated"})
}

// Delete handles GET /collab/delete/{id}.
func (h *CollaboratorHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrCollaboratorNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return rejected("collaborator", err)
	}

	metrics.MutationsTotal.WithLabelValues("collaborator", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Collaborator deleted"})
}
