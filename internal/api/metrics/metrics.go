// Package metrics defines and registers the custom Prometheus metrics of the
// CRM API. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "epicevents"

// MutationsTotal counts successful create/update/delete operations.
// Labels:
//   - entity: collaborator, client, contract, event
//   - action: create, update, delete
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful entity mutations.",
	},
	[]string{"entity", "action"},
)

// AuthFailuresTotal counts rejected credentials at the token gate.
// Label:
//   - reason: missing, malformed, expired, invalid
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// SanitizeRejectionsTotal counts requests refused by the permission gate
// before reaching the store.
// Labels:
//   - entity: collaborator, client, contract, event
//   - kind: invalid_field, invalid_value, unauthorized, empty
var SanitizeRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sanitize_rejections_total",
		Help:      "Total number of mutating requests rejected by the permission gate.",
	},
	[]string{"entity", "kind"},
)

// AuditQueueDepth tracks pending audit entries per dispatcher worker.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)
