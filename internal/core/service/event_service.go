package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/permission"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// EventService implements event operations. An event can only be created by
// the sales actor owning a signed contract, and each contract has at most one
// event.
type EventService struct {
	repo      ports.EventRepository
	contracts ports.ContractRepository
	trail     ports.AuditTrail
	log       zerolog.Logger
}

func NewEventService(repo ports.EventRepository, contracts ports.ContractRepository, trail ports.AuditTrail, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, contracts: contracts, trail: trail, log: log}
}

// List is open to any authenticated actor.
func (s *EventService) List(ctx context.Context, f ports.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, f)
}

// Create registers the single event of a signed contract owned by the actor.
// The client reference is derived from the contract, never from the input.
func (s *EventService) Create(ctx context.Context, actor domain.Actor, fields map[string]any) error {
	if actor.Role != domain.RoleSales {
		return domain.ErrUnauthorized
	}

	clean, err := permission.Sanitize(permission.EntityEvent, actor.Role, fields)
	if err != nil {
		return err
	}
	if err := requireFields(clean, "contract_id", "event_start", "event_end", "location", "attendees"); err != nil {
		return err
	}

	contract, err := s.contracts.FindByID(ctx, asInt64(clean["contract_id"]))
	if err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			return domain.ErrContractRefNotFound
		}
		return err
	}
	if contract.CommercialID != actor.ID {
		return domain.ErrNotYourClient
	}
	if !contract.Status {
		return domain.ErrContractNotSigned
	}

	// Cheap pre-check; the unique index on contract_id is the real guard
	// against two concurrent creations.
	if _, err := s.repo.FindByContract(ctx, contract.ID); err == nil {
		return domain.ErrDuplicateEvent
	} else if !errors.Is(err, domain.ErrEventNotFound) {
		return err
	}

	created, err := s.repo.Create(ctx, &domain.Event{
		ContractID: contract.ID,
		ClientID:   contract.ClientID,
		Start:      asString(clean["event_start"]),
		End:        asString(clean["event_end"]),
		SupportID:  asInt64(clean["support_id"]),
		Location:   asString(clean["location"]),
		Attendees:  asInt64(clean["attendees"]),
		Note:       asString(clean["note"]),
	})
	if err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityEvent, created.ID, "create")
	return nil
}

// Update mutates an event. Support actors may only touch events assigned to
// them; management may touch any event (to assign a support collaborator).
func (s *EventService) Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error {
	if actor.Role != domain.RoleManagement && actor.Role != domain.RoleSupport {
		return domain.ErrUnauthorized
	}

	clean, err := permission.Sanitize(permission.EntityEvent, actor.Role, fields)
	if err != nil {
		return err
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleSupport && event.SupportID != actor.ID {
		return domain.ErrNotYourEvent
	}

	if err := s.repo.Update(ctx, id, clean); err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityEvent, id, "update")
	return nil
}
