// Package audit persists a trail of successful mutations without blocking
// the request path.
package audit

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/api/metrics"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on (entity, entity id), keeping per-record ordering. Record never
// blocks: when a worker's buffer is full the entry is dropped and logged.
// The audit trail is best-effort; requests must not wait on it.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	sink    ports.AuditSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.AuditSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record implements ports.AuditTrail.
func (d *Dispatcher) Record(entry domain.AuditEntry) {
	idx := d.shardIndex(entry)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().
			Str("entity", entry.Entity).
			Int64("entity_id", entry.EntityID).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an entry deterministically to a worker index.
func (d *Dispatcher) shardIndex(entry domain.AuditEntry) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s:%d", entry.Entity, entry.EntityID)
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
			err := d.sink.Insert(insertCtx, entry)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("entity", entry.Entity).
					Int64("entity_id", entry.EntityID).
					Int("worker_id", id).
					Msg("audit entry persistence failed")
				continue
			}
			d.log.Info().
				Str("entity", entry.Entity).
				Int64("entity_id", entry.EntityID).
				Str("action", entry.Action).
				Int64("actor_id", entry.ActorID).
				Msg("mutation recorded")
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
