package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PVL06/OC-P12-Epic/internal/api/metrics"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

const timestampLayout = "02-01-2006 15:04:05"

// ClientHandler handles client endpoints.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type clientResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	CreateDate   string `json:"create_date"`
	UpdateDate   string `json:"update_date"`
	CommercialID int64  `json:"commercial_id"`
}

func toClientResponse(cl *domain.Client) clientResponse {
	updated := "never updated"
	if !cl.UpdatedAt.IsZero() {
		updated = cl.UpdatedAt.Format(timestampLayout)
	}
	return clientResponse{
		ID:           cl.ID,
		Name:         cl.Name,
		Email:        cl.Email,
		Phone:        cl.Phone,
		Company:      cl.Company,
		CreateDate:   cl.CreatedAt.Format(timestampLayout),
		UpdateDate:   updated,
		CommercialID: cl.CommercialID,
	}
}

// List handles GET /client with optional ?commercial_id= and ?unassigned
// filters. Open to any authenticated actor.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        commercial_id  query     int     false  "Filter by owning sales collaborator"
// @Param        unassigned     query     string  false  "Only clients without an owner"
// @Success      200            {object}  map[string][]clientResponse
// @Failure      401            {object}  map[string]string
// @Router       /client [get]
func (h *ClientHandler) List(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), ports.ClientFilter{
		CommercialID: queryInt64(c, "commercial_id"),
		Unassigned:   queryFlag(c, "unassigned"),
	})
	if err != nil {
		return err
	}

	out := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, toClientResponse(cl))
	}
	return c.JSON(http.StatusOK, map[string][]clientResponse{"clients": out})
}

// Create handles POST /client/create; the creating sales actor becomes the
// client's owner.
func (h *ClientHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Create(c.Request().Context(), actor, fields); err != nil {
		return rejected("client", err)
	}

	metrics.MutationsTotal.WithLabelValues("client", "create").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Client created"})
}

// Update handles POST /client/update/{id}.
func (h *ClientHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrClientNotFound)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), actor, id, fields); err != nil {
		return rejected("client", err)
	}

	metrics.MutationsTotal.WithLabelValues("client", "update").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Client updated"})
}
