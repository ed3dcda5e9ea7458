package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository. The unique index on
// (scope, idem_key) is the concurrency primitive: a losing concurrent insert
// simply affects zero rows.
type IdempotencyRepo struct {
	pool Pool
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// Insert adds a PROCESSING record. Returns false when (scope, key) already
// exists; the caller then classifies the existing record.
func (r *IdempotencyRepo) Insert(ctx context.Context, rec *domain.IdempotencyRecord) (bool, error) {
	query := `INSERT INTO idempotency (scope, idem_key, request_hash, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (scope, idem_key) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		rec.Scope, rec.Key, rec.RequestHash, rec.Status, rec.CreatedAt, rec.ExpiresAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert idempotency record: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get fetches a record by (scope, key). Returns nil, nil when absent.
func (r *IdempotencyRepo) Get(ctx context.Context, scope, key string) (*domain.IdempotencyRecord, error) {
	query := `SELECT scope, idem_key, request_hash, status, COALESCE(response_status, 0), response_body, created_at, completed_at, expires_at
		FROM idempotency WHERE scope = $1 AND idem_key = $2`

	rec := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, scope, key).Scan(
		&rec.Scope, &rec.Key, &rec.RequestHash, &rec.Status,
		&rec.ResponseStatus, &rec.ResponseBody, &rec.CreatedAt, &rec.CompletedAt, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency record: %w", err)
	}
	return rec, nil
}

// ResetFailed flips a FAILED record back to PROCESSING. The status guard in
// the WHERE clause makes concurrent retries race safely: exactly one wins.
func (r *IdempotencyRepo) ResetFailed(ctx context.Context, scope, key string) (bool, error) {
	query := `UPDATE idempotency
		SET status = 'PROCESSING', created_at = NOW()
		WHERE scope = $1 AND idem_key = $2 AND status = 'FAILED'`

	tag, err := r.pool.Exec(ctx, query, scope, key)
	if err != nil {
		return false, fmt.Errorf("reset failed idempotency record: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Complete stores the outcome and flips the record to COMPLETED (terminal).
func (r *IdempotencyRepo) Complete(ctx context.Context, scope, key string, responseStatus int, responseBody []byte) error {
	query := `UPDATE idempotency
		SET status = 'COMPLETED', response_status = $3, response_body = $4, completed_at = NOW()
		WHERE scope = $1 AND idem_key = $2 AND status = 'PROCESSING'`

	tag, err := r.pool.Exec(ctx, query, scope, key, responseStatus, responseBody)
	if err != nil {
		return fmt.Errorf("complete idempotency record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("idempotency record not in PROCESSING: %s/%s", scope, key)
	}
	return nil
}

// Fail flips a PROCESSING record to FAILED so a later retry may re-enter.
func (r *IdempotencyRepo) Fail(ctx context.Context, scope, key string) error {
	query := `UPDATE idempotency SET status = 'FAILED'
		WHERE scope = $1 AND idem_key = $2 AND status = 'PROCESSING'`

	if _, err := r.pool.Exec(ctx, query, scope, key); err != nil {
		return fmt.Errorf("fail idempotency record: %w", err)
	}
	return nil
}

// PurgeExpired removes records past their TTL.
func (r *IdempotencyRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM idempotency WHERE expires_at < $1`

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("purge expired idempotency records: %w", err)
	}
	return tag.RowsAffected(), nil
}
