package service

import (
	"context"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"

	"github.com/rs/zerolog"
)

// Outbox accumulates envelopes during a command and flushes them to the event
// log only after the database commit returned nil. A publish failure is
// logged, never propagated: the authoritative write already happened and the
// read model catches up from the log later.
type Outbox struct {
	events ports.EventLog
	log    zerolog.Logger

	pending []domain.Envelope
}

// NewOutbox creates an empty outbox bound to the event log.
func NewOutbox(events ports.EventLog, log zerolog.Logger) *Outbox {
	return &Outbox{events: events, log: log}
}

// Stage queues an envelope for publication after commit.
func (o *Outbox) Stage(env domain.Envelope) {
	o.pending = append(o.pending, env)
}

// Flush publishes every staged envelope in order. Call only after the
// transaction committed.
func (o *Outbox) Flush(ctx context.Context) {
	for _, env := range o.pending {
		if err := o.events.Publish(ctx, env); err != nil {
			o.log.Error().Err(err).
				Str("event_id", env.EventID).
				Str("event_type", env.EventType).
				Str("aggregate_id", env.AggregateID).
				Msg("event publish failed after commit; read model will lag")
		}
	}
	o.pending = nil
}
