package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/config"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// projectedTopics is every stream the read model follows.
var projectedTopics = []string{
	domain.TopicWalletCreated,
	domain.TopicWalletUpdated,
	domain.TopicBalanceUpdated,
	domain.TopicMemberInvited,
	domain.TopicInviteAccepted,
	domain.TopicMembersCleared,
}

// ProjectorImpl implements ports.Projector. Every write it performs is an
// upsert keyed by aggregate id, so redelivered events are safe to reapply and
// entries are acked only after the projection landed.
type ProjectorImpl struct {
	readRepo ports.ReadModelRepository
	stream   ports.EventStream
	cfg      config.ProjectorConfig
	log      zerolog.Logger
}

// NewProjector creates a new ProjectorImpl.
func NewProjector(readRepo ports.ReadModelRepository, stream ports.EventStream, cfg config.ProjectorConfig, log zerolog.Logger) *ProjectorImpl {
	return &ProjectorImpl{readRepo: readRepo, stream: stream, cfg: cfg, log: log}
}

// Run consumes the event streams until ctx is cancelled. Transient failures
// leave the entry unacked for redelivery; corrupt payloads are acked and
// skipped so one poison entry cannot stall the group.
func (p *ProjectorImpl) Run(ctx context.Context) error {
	if err := p.stream.EnsureGroup(ctx, p.cfg.Group, projectedTopics); err != nil {
		return fmt.Errorf("ensure consumer group: %w", err)
	}

	p.log.Info().
		Str("group", p.cfg.Group).
		Str("consumer", p.cfg.Consumer).
		Msg("read-model projector started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		events, err := p.stream.Read(ctx, p.cfg.Group, p.cfg.Consumer, projectedTopics, p.cfg.BatchSize, p.cfg.Block)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Error().Err(err).Msg("event stream read failed")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, ev := range events {
			err := ev.DecodeErr
			if err == nil {
				err = p.Apply(ctx, ev.Envelope)
			}
			if err != nil {
				if apperror.KindOf(err) == apperror.KindCorruption {
					p.log.Error().Err(err).
						Str("topic", ev.Topic).
						Str("entry_id", ev.ID).
						Msg("skipping corrupt event")
				} else {
					p.log.Error().Err(err).
						Str("topic", ev.Topic).
						Str("entry_id", ev.ID).
						Msg("projection failed; entry left for redelivery")
					continue
				}
			}
			if err := p.stream.Ack(ctx, ev.Topic, p.cfg.Group, ev.ID); err != nil {
				p.log.Warn().Err(err).
					Str("topic", ev.Topic).
					Str("entry_id", ev.ID).
					Msg("ack failed; entry will be redelivered")
			}
		}
	}
}

// Apply projects one envelope into the read model. Unknown event types are
// ignored.
func (p *ProjectorImpl) Apply(ctx context.Context, env domain.Envelope) error {
	switch env.EventType {
	case domain.EventWalletCreated:
		return p.applyWalletCreated(ctx, env)
	case domain.EventWalletUpdated:
		return p.applyWalletUpdated(ctx, env)
	case domain.EventWalletBalanceUpdated:
		return p.applyBalanceUpdated(ctx, env)
	case domain.EventWalletMemberInvited:
		// No account exists yet; the membership lands on accept.
		return nil
	case domain.EventWalletInviteAccepted:
		return p.applyInviteAccepted(ctx, env)
	case domain.EventWalletMembersCleared:
		return p.applyMembersCleared(ctx, env)
	default:
		p.log.Debug().Str("event_type", env.EventType).Msg("ignoring unknown event type")
		return nil
	}
}

func (p *ProjectorImpl) applyWalletCreated(ctx context.Context, env domain.Envelope) error {
	var payload domain.WalletCreatedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return apperror.ErrCorruptPayload(fmt.Errorf("decode %s: %w", env.EventType, err))
	}

	summary := &domain.WalletSummary{
		WalletID:         payload.WalletID,
		OwnerUserID:      payload.OwnerUserID,
		Currency:         payload.Currency,
		Status:           payload.Status,
		Type:             payload.Type,
		Name:             payload.Name,
		BalanceSnapshot:  payload.BalanceSnapshot,
		MembersActive:    1,
		IsDefaultForUser: payload.IsDefaultForUser,
		CreatedAt:        payload.CreatedAt,
		UpdatedAt:        payload.UpdatedAt,
	}
	if err := p.readRepo.UpsertWalletSummary(ctx, summary); err != nil {
		return err
	}

	joined := payload.CreatedAt
	owner := &domain.MemberSummary{
		WalletID:  payload.WalletID,
		UserID:    payload.OwnerUserID,
		Role:      domain.RoleOwner,
		Status:    domain.MemberStatusActive,
		JoinedAt:  &joined,
		UpdatedAt: payload.UpdatedAt,
	}
	if err := p.readRepo.UpsertMemberSummary(ctx, owner); err != nil {
		return err
	}

	index := &domain.MembershipIndexEntry{
		UserID:       payload.OwnerUserID,
		WalletID:     payload.WalletID,
		IsOwner:      true,
		WalletType:   payload.Type,
		WalletStatus: payload.Status,
		WalletName:   payload.Name,
		UpdatedAt:    payload.UpdatedAt,
	}
	if err := p.readRepo.UpsertMembershipIndex(ctx, index); err != nil {
		return err
	}

	if payload.IsDefaultForUser {
		if err := p.readRepo.SetDefaultWallet(ctx, payload.OwnerUserID, payload.WalletID); err != nil {
			return err
		}
	}
	return nil
}

func (p *ProjectorImpl) applyWalletUpdated(ctx context.Context, env domain.Envelope) error {
	var payload domain.WalletUpdatedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return apperror.ErrCorruptPayload(fmt.Errorf("decode %s: %w", env.EventType, err))
	}

	// Preserve fields the update event does not carry.
	existing, err := p.readRepo.GetWalletSummary(ctx, payload.WalletID)
	if err != nil {
		return err
	}

	summary := &domain.WalletSummary{
		WalletID:        payload.WalletID,
		OwnerUserID:     payload.OwnerUserID,
		Currency:        payload.Currency,
		Status:          payload.Status,
		Type:            payload.Type,
		Name:            payload.Name,
		BalanceSnapshot: payload.BalanceSnapshot,
		UpdatedAt:       payload.UpdatedAt,
	}
	if existing != nil {
		summary.MembersActive = existing.MembersActive
		summary.IsDefaultForUser = existing.IsDefaultForUser
		summary.CreatedAt = existing.CreatedAt
		summary.BalanceSnapshot = existing.BalanceSnapshot
	}
	return p.readRepo.UpsertWalletSummary(ctx, summary)
}

func (p *ProjectorImpl) applyBalanceUpdated(ctx context.Context, env domain.Envelope) error {
	var payload domain.WalletBalanceUpdatedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return apperror.ErrCorruptPayload(fmt.Errorf("decode %s: %w", env.EventType, err))
	}
	return p.readRepo.UpdateBalanceSnapshot(ctx, payload.WalletID, payload.NewBalance)
}

func (p *ProjectorImpl) applyInviteAccepted(ctx context.Context, env domain.Envelope) error {
	var payload domain.WalletInviteAcceptedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return apperror.ErrCorruptPayload(fmt.Errorf("decode %s: %w", env.EventType, err))
	}

	joined := payload.OccurredAt
	member := &domain.MemberSummary{
		WalletID:  payload.WalletID,
		UserID:    payload.UserID,
		Role:      payload.Role,
		Status:    domain.MemberStatusActive,
		JoinedAt:  &joined,
		UpdatedAt: payload.OccurredAt,
	}
	if err := p.readRepo.UpsertMemberSummary(ctx, member); err != nil {
		return err
	}

	index := &domain.MembershipIndexEntry{
		UserID:    payload.UserID,
		WalletID:  payload.WalletID,
		IsOwner:   false,
		UpdatedAt: payload.OccurredAt,
	}
	if summary, err := p.readRepo.GetWalletSummary(ctx, payload.WalletID); err != nil {
		return err
	} else if summary != nil {
		index.WalletType = summary.Type
		index.WalletStatus = summary.Status
		index.WalletName = summary.Name
	}
	if err := p.readRepo.UpsertMembershipIndex(ctx, index); err != nil {
		return err
	}

	return p.readRepo.RecountActiveMembers(ctx, payload.WalletID)
}

func (p *ProjectorImpl) applyMembersCleared(ctx context.Context, env domain.Envelope) error {
	var payload domain.WalletMembersClearedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return apperror.ErrCorruptPayload(fmt.Errorf("decode %s: %w", env.EventType, err))
	}
	return p.readRepo.RemoveWalletMembers(ctx, payload.WalletID)
}
