// Package permission implements the write gate applied to every mutating
// request: a static per-role field allow-list combined with per-field format
// validators. It is pure data and pure functions; instance-level ownership
// rules live in the services, after the target record has been loaded.
package permission

import "github.com/PVL06/OC-P12-Epic/internal/core/domain"

// Entity names used as keys in the table and in audit entries.
const (
	EntityCollaborator = "collaborator"
	EntityClient       = "client"
	EntityContract     = "contract"
	EntityEvent        = "event"
)

// fieldTable maps entity → role → writable fields. Loaded once, read-only.
// A role absent from an entity's entry may not write that entity at all.
var fieldTable = map[string]map[domain.Role][]string{
	EntityCollaborator: {
		domain.RoleManagement: {"name", "email", "phone", "password", "role"},
	},
	EntityClient: {
		domain.RoleSales:      {"name", "email", "phone", "company"},
		domain.RoleManagement: {"commercial_id"},
	},
	EntityContract: {
		domain.RoleManagement: {"client_id", "total_cost", "event_title", "remaining_to_pay", "date", "status"},
		domain.RoleSales:      {"total_cost", "remaining_to_pay", "date", "status"},
	},
	EntityEvent: {
		domain.RoleManagement: {"support_id"},
		domain.RoleSales:      {"support_id", "contract_id", "event_start", "event_end", "location", "attendees", "note"},
		domain.RoleSupport:    {"event_start", "event_end", "location", "attendees", "note"},
	},
}

// allowedFields returns the writable field set for (entity, role), or nil
// when the role has no write access to the entity.
func allowedFields(entity string, role domain.Role) []string {
	return fieldTable[entity][role]
}
