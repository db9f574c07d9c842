package ports

import (
	"context"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

// AuditTrail records successful mutations. Record must not block the request
// path; implementations enqueue and persist asynchronously.
type AuditTrail interface {
	Record(entry domain.AuditEntry)
}

// AuditSink is the persistence side of the audit trail.
type AuditSink interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}
