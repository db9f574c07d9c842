package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/permission"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// ClientService implements client operations. Sales collaborators own the
// clients they create; management may only claim unassigned clients for a
// sales collaborator.
type ClientService struct {
	repo    ports.ClientRepository
	collabs ports.CollaboratorRepository
	trail   ports.AuditTrail
	log     zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, collabs ports.CollaboratorRepository, trail ports.AuditTrail, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, collabs: collabs, trail: trail, log: log}
}

// List is open to any authenticated actor.
func (s *ClientService) List(ctx context.Context, f ports.ClientFilter) ([]*domain.Client, error) {
	return s.repo.List(ctx, f)
}

// Create registers a new client owned by the creating sales actor.
func (s *ClientService) Create(ctx context.Context, actor domain.Actor, fields map[string]any) error {
	if actor.Role != domain.RoleSales {
		return domain.ErrUnauthorized
	}

	clean, err := permission.Sanitize(permission.EntityClient, actor.Role, fields)
	if err != nil {
		return err
	}
	if err := requireFields(clean, "name", "email", "phone", "company"); err != nil {
		return err
	}

	created, err := s.repo.Create(ctx, &domain.Client{
		Name:         asString(clean["name"]),
		Email:        asString(clean["email"]),
		Phone:        asString(clean["phone"]),
		Company:      asString(clean["company"]),
		CommercialID: actor.ID,
	})
	if err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityClient, created.ID, "create")
	return nil
}

// Update mutates a client. A sales actor may only touch clients they own. A
// management actor may only assign an owner to an unassigned client, and the
// assignee must be an existing sales collaborator.
func (s *ClientService) Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error {
	clean, err := permission.Sanitize(permission.EntityClient, actor.Role, fields)
	if err != nil {
		return err
	}

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	switch actor.Role {
	case domain.RoleSales:
		if client.CommercialID != actor.ID {
			return domain.ErrNotYourClient
		}
	case domain.RoleManagement:
		if client.Assigned() {
			return domain.ErrClientAssigned
		}
		if err := s.checkAssignee(ctx, asInt64(clean["commercial_id"])); err != nil {
			return err
		}
	default:
		return domain.ErrUnauthorized
	}

	if err := s.repo.Update(ctx, id, clean); err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityClient, id, "update")
	return nil
}

func (s *ClientService) checkAssignee(ctx context.Context, commercialID int64) error {
	collab, err := s.collabs.FindByID(ctx, commercialID)
	if err != nil {
		if errors.Is(err, domain.ErrCollaboratorNotFound) {
			return domain.ErrCollaboratorNotFound
		}
		return err
	}
	if collab.Role != domain.RoleSales {
		return domain.ErrCollaboratorNotFound
	}
	return nil
}
