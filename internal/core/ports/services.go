package ports

import (
	"context"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// AuthService owns login, token issuing and password changes.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	ChangePassword(ctx context.Context, actor domain.Actor, password string) error
}

// CollaboratorService implements the management-only collaborator operations.
type CollaboratorService interface {
	List(ctx context.Context, actor domain.Actor, f CollaboratorFilter) ([]*domain.Collaborator, error)
	Create(ctx context.Context, actor domain.Actor, fields map[string]any) error
	Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

// ClientService implements client operations with ownership rules.
type ClientService interface {
	List(ctx context.Context, f ClientFilter) ([]*domain.Client, error)
	Create(ctx context.Context, actor domain.Actor, fields map[string]any) error
	Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error
}

// ContractService implements contract operations with ownership rules.
type ContractService interface {
	List(ctx context.Context, actor domain.Actor, f ContractFilter) ([]*domain.Contract, error)
	Create(ctx context.Context, actor domain.Actor, fields map[string]any) error
	Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error
}

// EventService implements event operations with ownership rules.
type EventService interface {
	List(ctx context.Context, f EventFilter) ([]*domain.Event, error)
	Create(ctx context.Context, actor domain.Actor, fields map[string]any) error
	Update(ctx context.Context, actor domain.Actor, id int64, fields map[string]any) error
}
