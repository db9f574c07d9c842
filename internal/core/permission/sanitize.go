package permission

import (
	"slices"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// Sanitize turns a raw input map into a clean data map, or rejects it.
//
//   - The role must have a write entry for the entity, otherwise
//     domain.ErrUnauthorized.
//   - Every incoming field must be on the role's allow-list; the first
//     unknown field rejects the whole request (no best-effort partial accept,
//     extra attacker-supplied fields must never be dropped silently).
//   - Every value must pass Validate for its field.
//   - An empty input map is domain.ErrEmptyPayload.
//
// Accepted values are passed through unchanged.
func Sanitize(entity string, role domain.Role, fields map[string]any) (map[string]any, error) {
	allowed := allowedFields(entity, role)
	if allowed == nil {
		return nil, domain.ErrUnauthorized
	}
	if len(fields) == 0 {
		return nil, domain.ErrEmptyPayload
	}

	clean := make(map[string]any, len(fields))
	for field, value := range fields {
		if !slices.Contains(allowed, field) {
			return nil, &domain.Rejection{Kind: domain.RejectInvalidField, Field: field}
		}
		if !Validate(field, value) {
			return nil, &domain.Rejection{Kind: domain.RejectInvalidValue, Field: field}
		}
		clean[field] = value
	}
	return clean, nil
}
