package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PVL06/OC-P12-Epic/internal/api/metrics"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// ContractHandler handles contract endpoints.
type ContractHandler struct {
	service ports.ContractService
}

func NewContractHandler(service ports.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// List handles GET /contract with optional ?no_signed and ?debtor filters.
// Sales actors only see their own contracts.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        no_signed  query     string  false  "Only unsigned contracts"
// @Param        debtor     query     string  false  "Only contracts with an outstanding balance"
// @Success      200        {object}  map[string][]domain.Contract
// @Failure      401        {object}  map[string]string
// @Router       /contract [get]
func (h *ContractHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	contracts, err := h.service.List(c.Request().Context(), actor, ports.ContractFilter{
		NotSigned: queryFlag(c, "no_signed"),
		Debtor:    queryFlag(c, "debtor"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string][]*domain.Contract{"contracts": contracts})
}

// Create handles POST /contract/create (management only).
func (h *ContractHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Create(c.Request().Context(), actor, fields); err != nil {
		return rejected("contract", err)
	}

	metrics.MutationsTotal.WithLabelValues("contract", "create").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "contract created"})
}

// Update handles POST /contract/update/{id}.
func (h *ContractHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrContractNotFound)
	if err != nil {
		return err
	}
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), actor, id, fields); err != nil {
		return rejected("contract", err)
	}

	metrics.MutationsTotal.WithLabelValues("contract", "update").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "Contract updated"})
}
