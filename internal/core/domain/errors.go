package domain

import (
	"errors"
	"fmt"
)

// Error messages are part of the wire contract with the companion CLI and
// reproduce the historical phrasing, including punctuation.
var (
	ErrUnauthorized    = errors.New("Unauthorized")
	ErrInvalidEmail    = errors.New("email invalid !")
	ErrInvalidPassword = errors.New("Invalid password !")
	ErrTooManyLogins   = errors.New("Too many login attempts")

	ErrEmptyPayload = errors.New("No data provided")

	ErrCollaboratorNotFound = errors.New("Invalid collaborator id")
	ErrClientNotFound       = errors.New("Invalid client")
	ErrContractNotFound     = errors.New("Invalid contract")
	ErrContractRefNotFound  = errors.New("Invalid contract id")
	ErrEventNotFound        = errors.New("Invalid event id")

	ErrNotYourClient     = errors.New("Not your client")
	ErrNotYourEvent      = errors.New("Not your event")
	ErrClientAssigned    = errors.New("Client already assigned")
	ErrContractNotSigned = errors.New("Contract not signed")
	ErrDuplicateEvent    = errors.New("Event already exists for this contract")

	ErrIntegrity = errors.New("Integrity error")
)

// RejectionKind classifies why the request sanitizer refused an input map.
type RejectionKind string

const (
	RejectInvalidField RejectionKind = "invalid_field"
	RejectInvalidValue RejectionKind = "invalid_value"
)

// MissingField rejects a create request lacking a field the entity cannot be
// stored without.
type MissingField struct {
	Field string
}

func (m *MissingField) Error() string {
	return fmt.Sprintf("Missing field: %s", m.Field)
}

// Rejection is the structured (kind, field) reason returned by the sanitizer.
type Rejection struct {
	Kind  RejectionKind
	Field string
}

func (r *Rejection) Error() string {
	if r.Kind == RejectInvalidValue {
		return fmt.Sprintf("Invalid value for field: %s", r.Field)
	}
	return fmt.Sprintf("Invalid field: %s", r.Field)
}
