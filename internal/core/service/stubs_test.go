package service

import (
	"context"
	"sync"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// In-memory repository stubs mirroring the storage-layer contracts, including
// uniqueness violations and not-found sentinels.

type stubCollaboratorRepo struct {
	nextID  int64
	collabs map[int64]*domain.Collaborator
}

func newStubCollaboratorRepo() *stubCollaboratorRepo {
	return &stubCollaboratorRepo{collabs: make(map[int64]*domain.Collaborator)}
}

func (r *stubCollaboratorRepo) add(c *domain.Collaborator) *domain.Collaborator {
	r.nextID++
	c.ID = r.nextID
	r.collabs[c.ID] = c
	return c
}

func (r *stubCollaboratorRepo) Create(_ context.Context, c *domain.Collaborator) (*domain.Collaborator, error) {
	for _, other := range r.collabs {
		if other.Email == c.Email || other.Phone == c.Phone {
			return nil, domain.ErrIntegrity
		}
	}
	return r.add(c), nil
}

func (r *stubCollaboratorRepo) FindByID(_ context.Context, id int64) (*domain.Collaborator, error) {
	c, ok := r.collabs[id]
	if !ok {
		return nil, domain.ErrCollaboratorNotFound
	}
	return c, nil
}

func (r *stubCollaboratorRepo) FindByEmail(_ context.Context, email string) (*domain.Collaborator, error) {
	for _, c := range r.collabs {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domain.ErrCollaboratorNotFound
}

func (r *stubCollaboratorRepo) List(_ context.Context, f ports.CollaboratorFilter) ([]*domain.Collaborator, error) {
	var out []*domain.Collaborator
	for _, c := range r.collabs {
		if f.Role != "" && c.Role != f.Role {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCollaboratorRepo) Update(_ context.Context, id int64, fields map[string]any) error {
	c, ok := r.collabs[id]
	if !ok {
		return domain.ErrCollaboratorNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = asString(v)
		case "email":
			c.Email = asString(v)
		case "phone":
			c.Phone = asString(v)
		case "password_hash":
			c.PasswordHash = asString(v)
		case "role":
			c.Role = domain.Role(asString(v))
		}
	}
	return nil
}

func (r *stubCollaboratorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.collabs[id]; !ok {
		return domain.ErrCollaboratorNotFound
	}
	delete(r.collabs, id)
	return nil
}

type stubClientRepo struct {
	nextID  int64
	clients map[int64]*domain.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client)}
}

func (r *stubClientRepo) add(c *domain.Client) *domain.Client {
	r.nextID++
	c.ID = r.nextID
	r.clients[c.ID] = c
	return c
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	for _, other := range r.clients {
		if other.Email == c.Email || other.Phone == c.Phone || other.Company == c.Company {
			return nil, domain.ErrIntegrity
		}
	}
	return r.add(c), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *stubClientRepo) List(_ context.Context, f ports.ClientFilter) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, c := range r.clients {
		if f.CommercialID > 0 && c.CommercialID != f.CommercialID {
			continue
		}
		if f.Unassigned && c.Assigned() {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, id int64, fields map[string]any) error {
	c, ok := r.clients[id]
	if !ok {
		return domain.ErrClientNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = asString(v)
		case "email":
			c.Email = asString(v)
		case "phone":
			c.Phone = asString(v)
		case "company":
			c.Company = asString(v)
		case "commercial_id":
			c.CommercialID = asInt64(v)
		}
	}
	return nil
}

type stubContractRepo struct {
	nextID    int64
	contracts map[int64]*domain.Contract
}

func newStubContractRepo() *stubContractRepo {
	return &stubContractRepo{contracts: make(map[int64]*domain.Contract)}
}

func (r *stubContractRepo) add(c *domain.Contract) *domain.Contract {
	r.nextID++
	c.ID = r.nextID
	r.contracts[c.ID] = c
	return c
}

func (r *stubContractRepo) Create(_ context.Context, c *domain.Contract) (*domain.Contract, error) {
	return r.add(c), nil
}

func (r *stubContractRepo) FindByID(_ context.Context, id int64) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, domain.ErrContractNotFound
	}
	return c, nil
}

func (r *stubContractRepo) List(_ context.Context, f ports.ContractFilter) ([]*domain.Contract, error) {
	var out []*domain.Contract
	for _, c := range r.contracts {
		if f.CommercialID > 0 && c.CommercialID != f.CommercialID {
			continue
		}
		if f.NotSigned && c.Status {
			continue
		}
		if f.Debtor && c.RemainingToPay <= 0 {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubContractRepo) Update(_ context.Context, id int64, fields map[string]any) error {
	c, ok := r.contracts[id]
	if !ok {
		return domain.ErrContractNotFound
	}
	for k, v := range fields {
		switch k {
		case "client_id":
			c.ClientID = asInt64(v)
		case "commercial_id":
			c.CommercialID = asInt64(v)
		case "event_title":
			c.EventTitle = asString(v)
		case "total_cost":
			c.TotalCost = asFloat64(v)
		case "remaining_to_pay":
			c.RemainingToPay = asFloat64(v)
		case "date":
			c.Date = asString(v)
		case "status":
			c.Status = asBool(v)
		}
	}
	return nil
}

type stubEventRepo struct {
	nextID int64
	events map[int64]*domain.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[int64]*domain.Event)}
}

func (r *stubEventRepo) add(e *domain.Event) *domain.Event {
	r.nextID++
	e.ID = r.nextID
	r.events[e.ID] = e
	return e
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	for _, other := range r.events {
		if other.ContractID == e.ContractID {
			return nil, domain.ErrDuplicateEvent
		}
	}
	return r.add(e), nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *stubEventRepo) FindByContract(_ context.Context, contractID int64) (*domain.Event, error) {
	for _, e := range r.events {
		if e.ContractID == contractID {
			return e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *stubEventRepo) List(_ context.Context, f ports.EventFilter) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range r.events {
		if f.SupportID > 0 && e.SupportID != f.SupportID {
			continue
		}
		if f.NoSupport && e.SupportID != 0 {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, id int64, fields map[string]any) error {
	e, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	for k, v := range fields {
		switch k {
		case "contract_id":
			e.ContractID = asInt64(v)
		case "event_start":
			e.Start = asString(v)
		case "event_end":
			e.End = asString(v)
		case "support_id":
			e.SupportID = asInt64(v)
		case "location":
			e.Location = asString(v)
		case "attendees":
			e.Attendees = asInt64(v)
		case "note":
			e.Note = asString(v)
		}
	}
	return nil
}

type stubTrail struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (t *stubTrail) Record(entry domain.AuditEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
}

func (t *stubTrail) last() (domain.AuditEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) == 0 {
		return domain.AuditEntry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

type stubLimiter struct {
	locked bool
	fails  map[string]int
	resets int
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{fails: make(map[string]int)}
}

func (l *stubLimiter) TooMany(_ context.Context, _ string) (bool, error) { return l.locked, nil }

func (l *stubLimiter) Fail(_ context.Context, email string) error {
	l.fails[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}
