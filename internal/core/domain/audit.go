package domain

import "time"

// AuditEntry records one successful mutation for the audit trail.
type AuditEntry struct {
	Entity   string    `bson:"entity"`
	EntityID int64     `bson:"entity_id"`
	Action   string    `bson:"action"`
	ActorID  int64     `bson:"actor_id"`
	Role     Role      `bson:"role"`
	At       time.Time `bson:"at"`
}
