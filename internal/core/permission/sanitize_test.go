package permission

import (
	"errors"
	"testing"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

func TestSanitize_PassThrough(t *testing.T) {
	in := map[string]any{
		"name":  "client name",
		"email": "client@gmail.com",
		"phone": "4343434",
	}
	clean, err := Sanitize(EntityClient, domain.RoleSales, in)
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}
	if len(clean) != len(in) {
		t.Fatalf("expected %d fields, got %d", len(in), len(clean))
	}
	for k, v := range in {
		if clean[k] != v {
			t.Errorf("field %s: expected %v unchanged, got %v", k, v, clean[k])
		}
	}
}

func TestSanitize_RoleWithoutEntry(t *testing.T) {
	// Support has no write access to clients at all.
	_, err := Sanitize(EntityClient, domain.RoleSupport, map[string]any{"name": "x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Sales may not write collaborators.
	_, err = Sanitize(EntityCollaborator, domain.RoleSales, map[string]any{"name": "x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSanitize_UnknownField(t *testing.T) {
	// commercial_id is writable by management on clients, not by sales,
	// even though the value itself would validate.
	_, err := Sanitize(EntityClient, domain.RoleSales, map[string]any{"commercial_id": 3})
	var rej *domain.Rejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected Rejection, got %v", err)
	}
	if rej.Kind != domain.RejectInvalidField || rej.Field != "commercial_id" {
		t.Fatalf("unexpected rejection: %+v", rej)
	}
	if rej.Error() != "Invalid field: commercial_id" {
		t.Fatalf("unexpected message: %s", rej.Error())
	}
}

func TestSanitize_InvalidValue(t *testing.T) {
	_, err := Sanitize(EntityCollaborator, domain.RoleManagement, map[string]any{"email": "not-an-email"})
	var rej *domain.Rejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected Rejection, got %v", err)
	}
	if rej.Kind != domain.RejectInvalidValue || rej.Field != "email" {
		t.Fatalf("unexpected rejection: %+v", rej)
	}
	if rej.Error() != "Invalid value for field: email" {
		t.Fatalf("unexpected message: %s", rej.Error())
	}
}

func TestSanitize_EmptyPayload(t *testing.T) {
	_, err := Sanitize(EntityEvent, domain.RoleSupport, map[string]any{})
	if !errors.Is(err, domain.ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
}

func TestSanitize_EventRoleScopes(t *testing.T) {
	fields := map[string]any{"contract_id": 1}

	if _, err := Sanitize(EntityEvent, domain.RoleSales, fields); err != nil {
		t.Fatalf("sales should write contract_id on events: %v", err)
	}

	// Support may update schedule fields but never relink the contract.
	if _, err := Sanitize(EntityEvent, domain.RoleSupport, fields); err == nil {
		t.Fatalf("support should not write contract_id")
	}

	// Management only assigns the support collaborator.
	if _, err := Sanitize(EntityEvent, domain.RoleManagement, map[string]any{"support_id": 2}); err != nil {
		t.Fatalf("management should write support_id: %v", err)
	}
	if _, err := Sanitize(EntityEvent, domain.RoleManagement, map[string]any{"location": "Paris"}); err == nil {
		t.Fatalf("management should not write location")
	}
}

func TestSanitize_ContractRoleScopes(t *testing.T) {
	// Only management can point a contract at a client.
	if _, err := Sanitize(EntityContract, domain.RoleManagement, map[string]any{"client_id": 1}); err != nil {
		t.Fatalf("management should write client_id: %v", err)
	}
	if _, err := Sanitize(EntityContract, domain.RoleSales, map[string]any{"client_id": 1}); err == nil {
		t.Fatalf("sales should not write client_id")
	}
	if _, err := Sanitize(EntityContract, domain.RoleSales, map[string]any{"status": true, "remaining_to_pay": 0}); err != nil {
		t.Fatalf("sales should write status and balance: %v", err)
	}
}
