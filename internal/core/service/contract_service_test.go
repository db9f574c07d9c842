package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

func contractPayload(clientID int64) map[string]any {
	return map[string]any{
		"client_id":        int(clientID),
		"event_title":      "wedding",
		"total_cost":       5000,
		"remaining_to_pay": 5000,
		"date":             "01/06/2025",
		"status":           false,
	}
}

func TestContractCreate_OwnerCopiedFromClient(t *testing.T) {
	clients := newStubClientRepo()
	client := clients.add(&domain.Client{Name: "c", Email: "c@x.com", Phone: "1", Company: "C", CommercialID: sales.ID})
	repo := newStubContractRepo()
	trail := &stubTrail{}
	svc := NewContractService(repo, clients, trail, zerolog.Nop())

	if err := svc.Create(context.Background(), management, contractPayload(client.ID)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	created, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("created contract not found: %v", err)
	}
	if created.ClientID != client.ID {
		t.Errorf("expected client %d, got %d", client.ID, created.ClientID)
	}
	if created.CommercialID != sales.ID {
		t.Errorf("owner not copied from client: got %d", created.CommercialID)
	}
	if created.TotalCost != 5000 || created.RemainingToPay != 5000 {
		t.Errorf("amounts not stored: %+v", created)
	}

	entry, ok := trail.last()
	if !ok || entry.Entity != "contract" || entry.Action != "create" {
		t.Errorf("unexpected audit entry: %+v", entry)
	}
}

func TestContractCreate_NotManagement(t *testing.T) {
	svc := NewContractService(newStubContractRepo(), newStubClientRepo(), nil, zerolog.Nop())

	if err := svc.Create(context.Background(), sales, contractPayload(1)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestContractCreate_UnknownClient(t *testing.T) {
	svc := NewContractService(newStubContractRepo(), newStubClientRepo(), nil, zerolog.Nop())

	if err := svc.Create(context.Background(), management, contractPayload(42)); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestContractCreate_MissingDate(t *testing.T) {
	clients := newStubClientRepo()
	client := clients.add(&domain.Client{Name: "c", Email: "c@x.com", Phone: "1", Company: "C"})
	svc := NewContractService(newStubContractRepo(), clients, nil, zerolog.Nop())

	payload := contractPayload(client.ID)
	delete(payload, "date")
	err := svc.Create(context.Background(), management, payload)
	var missing *domain.MissingField
	if !errors.As(err, &missing) || missing.Field != "date" {
		t.Fatalf("expected MissingField date, got %v", err)
	}
}

func TestContractUpdate_SalesOwnership(t *testing.T) {
	repo := newStubContractRepo()
	owned := repo.add(&domain.Contract{ClientID: 1, CommercialID: sales.ID, RemainingToPay: 1000})
	other := repo.add(&domain.Contract{ClientID: 2, CommercialID: 99})
	svc := NewContractService(repo, newStubClientRepo(), nil, zerolog.Nop())

	err := svc.Update(context.Background(), sales, owned.ID, map[string]any{"remaining_to_pay": 0, "status": true})
	if err != nil {
		t.Fatalf("Update on owned contract returned error: %v", err)
	}
	if owned.RemainingToPay != 0 || !owned.Status {
		t.Errorf("update not applied: %+v", owned)
	}

	err = svc.Update(context.Background(), sales, other.ID, map[string]any{"status": true})
	if !errors.Is(err, domain.ErrNotYourClient) {
		t.Fatalf("expected ErrNotYourClient, got %v", err)
	}
}

func TestContractUpdate_UnknownID(t *testing.T) {
	svc := NewContractService(newStubContractRepo(), newStubClientRepo(), nil, zerolog.Nop())

	err := svc.Update(context.Background(), management, 42, map[string]any{"status": true})
	if !errors.Is(err, domain.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}

func TestContractList_Scoping(t *testing.T) {
	repo := newStubContractRepo()
	repo.add(&domain.Contract{ClientID: 1, CommercialID: sales.ID, Status: true})
	repo.add(&domain.Contract{ClientID: 2, CommercialID: 99, RemainingToPay: 500})
	svc := NewContractService(repo, newStubClientRepo(), nil, zerolog.Nop())

	all, err := svc.List(context.Background(), management, ports.ContractFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("management should see all contracts, got %d (%v)", len(all), err)
	}

	// Sales listings are forced onto the actor's own contracts even without a
	// filter.
	mine, err := svc.List(context.Background(), sales, ports.ContractFilter{})
	if err != nil || len(mine) != 1 || mine[0].CommercialID != sales.ID {
		t.Fatalf("sales scoping failed: %v %v", mine, err)
	}

	debtors, err := svc.List(context.Background(), management, ports.ContractFilter{Debtor: true})
	if err != nil || len(debtors) != 1 || debtors[0].RemainingToPay != 500 {
		t.Fatalf("debtor filter failed: %v %v", debtors, err)
	}
	unsigned, err := svc.List(context.Background(), management, ports.ContractFilter{NotSigned: true})
	if err != nil || len(unsigned) != 1 || unsigned[0].Status {
		t.Fatalf("not-signed filter failed: %v %v", unsigned, err)
	}

	if _, err := svc.List(context.Background(), support, ports.ContractFilter{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for support list, got %v", err)
	}
}
