package service

import (
	"context"
	"fmt"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// IdempotencyServiceImpl implements ports.IdempotencyService on top of the
// idempotency table. The unique (scope, key) constraint is the only
// concurrency guard; there is no advisory locking.
type IdempotencyServiceImpl struct {
	repo ports.IdempotencyRepository
	log  zerolog.Logger
}

// NewIdempotencyService creates a new IdempotencyServiceImpl.
func NewIdempotencyService(repo ports.IdempotencyRepository, log zerolog.Logger) *IdempotencyServiceImpl {
	return &IdempotencyServiceImpl{repo: repo, log: log}
}

// Begin claims (scope, key) for execution. Fresh means the caller owns the
// run; a COMPLETED record replays the stored response byte-for-byte. A reused
// key with a different body is a conflict, and a PROCESSING record means a
// concurrent run holds the claim.
func (s *IdempotencyServiceImpl) Begin(ctx context.Context, scope, key string, body any) (ports.BeginResult, error) {
	hash, err := domain.RequestHash(body)
	if err != nil {
		return ports.BeginResult{}, apperror.InternalError(err)
	}

	now := time.Now().UTC()
	inserted, err := s.repo.Insert(ctx, &domain.IdempotencyRecord{
		Scope:       scope,
		Key:         key,
		RequestHash: hash,
		Status:      domain.IdemProcessing,
		CreatedAt:   now,
		ExpiresAt:   now.Add(domain.IdempotencyTTL),
	})
	if err != nil {
		return ports.BeginResult{}, apperror.ErrDatabase(fmt.Errorf("claim idempotency record: %w", err))
	}
	if inserted {
		return ports.BeginResult{Fresh: true}, nil
	}

	rec, err := s.repo.Get(ctx, scope, key)
	if err != nil {
		return ports.BeginResult{}, apperror.ErrDatabase(fmt.Errorf("load idempotency record: %w", err))
	}
	if rec == nil {
		// The holder purged between insert and get; extremely rare, retryable.
		return ports.BeginResult{}, apperror.ErrIdempotencyInProgress()
	}

	if rec.RequestHash != hash {
		return ports.BeginResult{}, apperror.ErrIdempotencyConflict()
	}

	switch rec.Status {
	case domain.IdemCompleted:
		return ports.BeginResult{
			Fresh:          false,
			ResponseStatus: rec.ResponseStatus,
			Response:       rec.ResponseBody,
		}, nil

	case domain.IdemFailed:
		won, err := s.repo.ResetFailed(ctx, scope, key)
		if err != nil {
			return ports.BeginResult{}, apperror.ErrDatabase(fmt.Errorf("reset failed idempotency record: %w", err))
		}
		if !won {
			return ports.BeginResult{}, apperror.ErrIdempotencyInProgress()
		}
		return ports.BeginResult{Fresh: true}, nil

	default:
		return ports.BeginResult{}, apperror.ErrIdempotencyInProgress()
	}
}

// Complete stores the terminal response under (scope, key).
func (s *IdempotencyServiceImpl) Complete(ctx context.Context, scope, key string, responseStatus int, response []byte) error {
	if err := s.repo.Complete(ctx, scope, key, responseStatus, response); err != nil {
		return apperror.ErrDatabase(fmt.Errorf("complete idempotency record: %w", err))
	}
	return nil
}

// Fail marks the record FAILED so a retry with the same key can re-enter.
// Best-effort: a lost Fail leaves the record PROCESSING until it expires.
func (s *IdempotencyServiceImpl) Fail(ctx context.Context, scope, key string) {
	if err := s.repo.Fail(ctx, scope, key); err != nil {
		s.log.Warn().Err(err).
			Str("scope", scope).
			Str("key", key).
			Msg("failed to mark idempotency record FAILED")
	}
}

// RunCleanup deletes expired records every interval until ctx is cancelled.
// Records past expires_at no longer replay, so dropping them only reclaims
// space; a missed pass just leaves the rows for the next one.
func (s *IdempotencyServiceImpl) RunCleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		purged, err := s.repo.PurgeExpired(ctx, time.Now().UTC())
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency purge failed")
			continue
		}
		if purged > 0 {
			s.log.Info().Int64("purged", purged).Msg("purged expired idempotency records")
		}
	}
}
