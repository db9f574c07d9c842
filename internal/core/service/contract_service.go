package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/permission"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// ContractService implements contract operations. Contracts are created by
// management for an existing client; the owner is copied from the client.
type ContractService struct {
	repo    ports.ContractRepository
	clients ports.ClientRepository
	trail   ports.AuditTrail
	log     zerolog.Logger
}

func NewContractService(repo ports.ContractRepository, clients ports.ClientRepository, trail ports.AuditTrail, log zerolog.Logger) *ContractService {
	return &ContractService{repo: repo, clients: clients, trail: trail, log: log}
}

// List returns contracts visible to the actor. Sales collaborators only see
// contracts they own; management sees everything.
func (s *ContractService) List(ctx context.Context, actor domain.Actor, f ports.ContractFilter) ([]*domain.Contract, error) {
	switch actor.Role {
	case domain.RoleManagement:
	case domain.RoleSales:
		f.CommercialID = actor.ID
	default:
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, f)
}

// Create registers a contract for an existing client. The owning sales
// collaborator is inherited from the client, never taken from the input.
func (s *ContractService) Create(ctx context.Context, actor domain.Actor, fields map[string]any) error {
	if actor.Role != domain.RoleManagement {
		return domain.ErrUnauthorized
	}

	clean, err := permission.Sanitize(permission.EntityContract, actor.Role, fields)
	if err != nil {
		return err
	}
	if err := requireFields(clean, "client_id", "total_cost", "event_title", "remaining_to_pay", "date", "status"); err != nil {
		return err
	}

	client, err := s.clients.FindByID(ctx, asInt64(clean["client_id"]))
	if err != nil {
		return err
	}

	created, err := s.repo.Create(ctx, &domain.Contract{
		ClientID:       client.ID,
		CommercialID:   client.CommercialID,
		EventTitle:     asString(clean["event_title"]),
		TotalCost:      asFloat64(clean["total_cost"]),
		RemainingToPay: asFloat64(clean["remaining_to_pay"]),
		Date:           asString(clean["date"]),
		Status:         asBool(clean["status"]),
	})
	if err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityContract, created.ID, "create")
	return nil
}

// Update mutates a contract. Sales actors may only touch their own.
func (s *ContractService) Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error {
	clean, err := permission.Sanitize(permission.EntityContract, actor.Role, fields)
	if err != nil {
		return err
	}

	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleSales && contract.CommercialID != actor.ID {
		return domain.ErrNotYourClient
	}

	if err := s.repo.Update(ctx, id, clean); err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityContract, id, "update")
	return nil
}
