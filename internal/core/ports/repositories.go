package ports

import (
	"context"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// CollaboratorFilter narrows collaborator listings.
type CollaboratorFilter struct {
	Role domain.Role // empty = all roles
}

// ClientFilter narrows client listings.
type ClientFilter struct {
	CommercialID int64 // >0 = owned by this sales collaborator
	Unassigned   bool  // true = no owning sales collaborator
}

// ContractFilter narrows contract listings.
type ContractFilter struct {
	CommercialID int64 // >0 = owned by this sales collaborator
	NotSigned    bool  // true = status is false
	Debtor       bool  // true = remaining_to_pay > 0
}

// EventFilter narrows event listings.
type EventFilter struct {
	SupportID int64 // >0 = assigned to this support collaborator
	NoSupport bool  // true = no support collaborator assigned
}

// CollaboratorRepository persists collaborators. Email and phone are unique
// at the storage layer; violations surface as domain.ErrIntegrity.
type CollaboratorRepository interface {
	Create(ctx context.Context, c *domain.Collaborator) (*domain.Collaborator, error)
	FindByID(ctx context.Context, id int64) (*domain.Collaborator, error)
	FindByEmail(ctx context.Context, email string) (*domain.Collaborator, error)
	List(ctx context.Context, f CollaboratorFilter) ([]*domain.Collaborator, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// ClientRepository persists clients. Email, phone and company are unique at
// the storage layer; the repository stamps create/update timestamps.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, f ClientFilter) ([]*domain.Client, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
}

// ContractRepository persists contracts.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	FindByID(ctx context.Context, id int64) (*domain.Contract, error)
	List(ctx context.Context, f ContractFilter) ([]*domain.Contract, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
}

// EventRepository persists events. contract_id is unique at the storage
// layer; a duplicate insert surfaces as domain.ErrDuplicateEvent so that
// concurrent creations for the same contract resolve without a pre-lock.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	FindByContract(ctx context.Context, contractID int64) (*domain.Event, error)
	List(ctx context.Context, f EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
}
