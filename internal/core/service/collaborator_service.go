package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/permission"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
	"github.com/PVL06/OC-P12-Epic/internal/pkg/password"
)

// CollaboratorService implements the management-only collaborator operations.
type CollaboratorService struct {
	repo  ports.CollaboratorRepository
	trail ports.AuditTrail
	log   zerolog.Logger
}

func NewCollaboratorService(repo ports.CollaboratorRepository, trail ports.AuditTrail, log zerolog.Logger) *CollaboratorService {
	return &CollaboratorService{repo: repo, trail: trail, log: log}
}

func (s *CollaboratorService) List(ctx context.Context, actor domain.Actor, f ports.CollaboratorFilter) ([]*domain.Collaborator, error) {
	if actor.Role != domain.RoleManagement {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, f)
}

// Create registers a new collaborator. Email and phone uniqueness is left to
// the storage layer and surfaces as domain.ErrIntegrity.
func (s *CollaboratorService) Create(ctx context.Context, actor domain.Actor, fields map[string]any) error {
	clean, err := permission.Sanitize(permission.EntityCollaborator, actor.Role, fields)
	if err != nil {
		return err
	}
	if err := requireFields(clean, "name", "email", "phone", "password", "role"); err != nil {
		return err
	}

	hash, err := password.Hash(asString(clean["password"]))
	if err != nil {
		return err
	}

	created, err := s.repo.Create(ctx, &domain.Collaborator{
		Name:         asString(clean["name"]),
		Email:        asString(clean["email"]),
		Phone:        asString(clean["phone"]),
		PasswordHash: hash,
		Role:         domain.Role(asString(clean["role"])),
	})
	if err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityCollaborator, created.ID, "create")
	return nil
}

func (s *CollaboratorService) Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error {
	clean, err := permission.Sanitize(permission.EntityCollaborator, actor.Role, fields)
	if err != nil {
		return err
	}

	// Passwords are never stored raw; swap the incoming value for its hash.
	if raw, ok := clean["password"]; ok {
		hash, err := password.Hash(asString(raw))
		if err != nil {
			return err
		}
		delete(clean, "password")
		clean["password_hash"] = hash
	}

	if err := s.repo.Update(ctx, id, clean); err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityCollaborator, id, "update")
	return nil
}

// Delete removes a collaborator. References left behind on clients,
// contracts or events are not cleaned up; the original system never guarded
// against orphaning and the behaviour is kept.
func (s *CollaboratorService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if actor.Role != domain.RoleManagement {
		return domain.ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	record(s.trail, actor, permission.EntityCollaborator, id, "delete")
	return nil
}
