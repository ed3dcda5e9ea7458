package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// reclaimEvery bounds how often Read re-checks the consumer's pending list,
// so an entry whose projection keeps failing is retried at this cadence
// instead of in a tight loop.
const reclaimEvery = time.Minute

// EventLog implements ports.EventLog and ports.EventStream over Redis
// Streams. Each topic is its own stream; appends within a stream are ordered,
// so events for one aggregate stay in relative order as long as they share a
// topic. Consumers read through a group and commit position with XACK.
type EventLog struct {
	client *goredis.Client

	mu          sync.Mutex
	nextReclaim time.Time
}

// NewEventLog creates a Redis Streams event log.
func NewEventLog(client *goredis.Client) *EventLog {
	return &EventLog{client: client}
}

// Publish appends an envelope to the stream of its event type.
func (l *EventLog) Publish(ctx context.Context, env domain.Envelope) error {
	topic := domain.TopicFor(env.EventType)
	if topic == "" {
		return fmt.Errorf("no topic for event type %q", env.EventType)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	err = l.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: topic,
		Values: map[string]any{
			"envelope":     raw,
			"aggregate_id": env.AggregateID,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", topic, err)
	}
	return nil
}

// EnsureGroup creates the consumer group on every topic, starting from the
// beginning of each stream. Existing groups are left untouched.
func (l *EventLog) EnsureGroup(ctx context.Context, group string, topics []string) error {
	for _, topic := range topics {
		err := l.client.XGroupCreateMkStream(ctx, topic, group, "0").Err()
		if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
			return fmt.Errorf("create group %s on %s: %w", group, topic, err)
		}
	}
	return nil
}

// Read fetches up to count entries per call across the topics, blocking up to
// block when nothing new arrives. The consumer's pending list is checked
// first (on startup and then every reclaimEvery), so entries delivered earlier
// but never acked, after a failed projection or a crash, are redelivered
// instead of stranded in the PEL.
func (l *EventLog) Read(ctx context.Context, group, consumer string, topics []string, count int64, block time.Duration) ([]ports.LoggedEvent, error) {
	if l.shouldReclaim() {
		events, err := l.readGroup(ctx, group, consumer, topics, count, -1, "0")
		if err != nil {
			return nil, err
		}
		if len(events) > 0 {
			return events, nil
		}
	}
	return l.readGroup(ctx, group, consumer, topics, count, block, ">")
}

// shouldReclaim rate-limits pending-list reads to one per reclaimEvery.
func (l *EventLog) shouldReclaim() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	if now.Before(l.nextReclaim) {
		return false
	}
	l.nextReclaim = now.Add(reclaimEvery)
	return true
}

// readGroup runs one XREADGROUP over the topics. Cursor ">" delivers new
// entries; "0" replays the consumer's pending list.
func (l *EventLog) readGroup(ctx context.Context, group, consumer string, topics []string, count int64, block time.Duration, cursor string) ([]ports.LoggedEvent, error) {
	streams := make([]string, 0, len(topics)*2)
	streams = append(streams, topics...)
	for range topics {
		streams = append(streams, cursor)
	}

	res, err := l.client.XReadGroup(ctx, &goredis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  streams,
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("xreadgroup: %w", err)
	}

	var events []ports.LoggedEvent
	for _, stream := range res {
		for _, msg := range stream.Messages {
			ev := ports.LoggedEvent{Topic: stream.Stream, ID: msg.ID}
			raw, ok := msg.Values["envelope"].(string)
			if !ok {
				ev.DecodeErr = apperror.ErrCorruptPayload(
					fmt.Errorf("stream %s entry %s: missing envelope field", stream.Stream, msg.ID))
			} else if err := json.Unmarshal([]byte(raw), &ev.Envelope); err != nil {
				ev.DecodeErr = apperror.ErrCorruptPayload(
					fmt.Errorf("stream %s entry %s: %w", stream.Stream, msg.ID, err))
			}
			events = append(events, ev)
		}
	}
	return events, nil
}

// Ack commits the consumer group's position past the given entry.
func (l *EventLog) Ack(ctx context.Context, topic, group, id string) error {
	if err := l.client.XAck(ctx, topic, group, id).Err(); err != nil {
		return fmt.Errorf("xack %s %s: %w", topic, id, err)
	}
	return nil
}
