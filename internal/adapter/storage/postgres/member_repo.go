package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MemberRepo implements ports.MemberRepository.
type MemberRepo struct {
	pool Pool
}

// NewMemberRepo creates a new MemberRepo.
func NewMemberRepo(pool Pool) *MemberRepo {
	return &MemberRepo{pool: pool}
}

// Upsert inserts or updates a membership row within a transaction.
func (r *MemberRepo) Upsert(ctx context.Context, tx pgx.Tx, m *domain.WalletMember) error {
	query := `INSERT INTO wallet_members (wallet_id, user_id, role, status, alias, per_tx_limit, daily_limit, weekly_limit, monthly_limit, joined_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (wallet_id, user_id) DO UPDATE SET
			role = EXCLUDED.role,
			status = EXCLUDED.status,
			alias = EXCLUDED.alias,
			joined_at = COALESCE(wallet_members.joined_at, EXCLUDED.joined_at),
			updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		m.WalletID, m.UserID, m.Role, m.Status, m.Alias,
		m.PerTxLimit, m.DailyLimit, m.WeeklyLimit, m.MonthlyLimit,
		m.JoinedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert wallet member: %w", err)
	}
	return nil
}

// Get fetches a membership by (walletId, userId). Returns nil, nil when absent.
func (r *MemberRepo) Get(ctx context.Context, walletID, userID uuid.UUID) (*domain.WalletMember, error) {
	query := `SELECT wallet_id, user_id, role, status, alias, per_tx_limit, daily_limit, weekly_limit, monthly_limit, joined_at, updated_at
		FROM wallet_members WHERE wallet_id = $1 AND user_id = $2`

	m := &domain.WalletMember{}
	err := r.pool.QueryRow(ctx, query, walletID, userID).Scan(
		&m.WalletID, &m.UserID, &m.Role, &m.Status, &m.Alias,
		&m.PerTxLimit, &m.DailyLimit, &m.WeeklyLimit, &m.MonthlyLimit,
		&m.JoinedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet member: %w", err)
	}
	return m, nil
}

// ViewRoleAndStatus reads only the fields policy checks need.
func (r *MemberRepo) ViewRoleAndStatus(ctx context.Context, walletID, userID uuid.UUID) (*ports.MemberView, error) {
	query := `SELECT role, status FROM wallet_members WHERE wallet_id = $1 AND user_id = $2`

	v := &ports.MemberView{}
	err := r.pool.QueryRow(ctx, query, walletID, userID).Scan(&v.Role, &v.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("view member role/status: %w", err)
	}
	return v, nil
}

// PerTxLimit reads a member's per-transaction limit. Zero means unconfigured.
func (r *MemberRepo) PerTxLimit(ctx context.Context, walletID, userID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT per_tx_limit FROM wallet_members WHERE wallet_id = $1 AND user_id = $2`

	var limit decimal.Decimal
	err := r.pool.QueryRow(ctx, query, walletID, userID).Scan(&limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get member per-tx limit: %w", err)
	}
	return limit, nil
}

// CountByStatus counts members of a wallet in any of the given statuses.
func (r *MemberRepo) CountByStatus(ctx context.Context, walletID uuid.UUID, statuses []domain.MemberStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM wallet_members WHERE wallet_id = $1 AND status = ANY($2)`

	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, walletID, ss).Scan(&count); err != nil {
		return 0, fmt.Errorf("count wallet members: %w", err)
	}
	return count, nil
}

// ClearNonOwners marks every non-owner membership REMOVED within a transaction.
func (r *MemberRepo) ClearNonOwners(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (int64, error) {
	query := `UPDATE wallet_members SET status = 'REMOVED', updated_at = NOW()
		WHERE wallet_id = $1 AND role <> 'OWNER' AND status <> 'REMOVED'`

	tag, err := tx.Exec(ctx, query, walletID)
	if err != nil {
		return 0, fmt.Errorf("clear wallet members: %w", err)
	}
	return tag.RowsAffected(), nil
}
