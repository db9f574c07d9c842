// Package service implements the per-entity request handlers of the CRM: the
// operation-level role gate, the field sanitizer, the instance-level
// ownership rules, and the calls into the entity store, in that order.
package service

import (
	"time"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

// requireFields rejects a create payload missing one of the fields the entity
// cannot be persisted without. Checked after sanitizing, so every present
// field is already allowed and valid.
func requireFields(clean map[string]any, fields ...string) error {
	for _, f := range fields {
		if _, ok := clean[f]; !ok {
			return &domain.MissingField{Field: f}
		}
	}
	return nil
}

// record enqueues an audit entry for a successful mutation. Nil trail means
// auditing is disabled (unit tests).
func record(trail ports.AuditTrail, actor domain.Actor, entity string, entityID int64, action string) {
	if trail == nil {
		return
	}
	trail.Record(domain.AuditEntry{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		ActorID:  actor.ID,
		Role:     actor.Role,
		At:       time.Now().UTC(),
	})
}

// Sanitized values arrive as native ints from Go callers or float64 from JSON
// decoding; both carry integral values once validated.

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
