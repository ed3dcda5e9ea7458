package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ReadModelRepo implements ports.ReadModelRepository over the query-side
// tables wallet_read, wallet_member_read, user_wallet_read and
// user_receive_prefs. All writes are upserts keyed by aggregate id so
// reapplying an event is a no-op, never an increment.
type ReadModelRepo struct {
	pool Pool
}

// NewReadModelRepo creates a new ReadModelRepo.
func NewReadModelRepo(pool Pool) *ReadModelRepo {
	return &ReadModelRepo{pool: pool}
}

// UpsertWalletSummary inserts or overwrites a wallet summary row.
func (r *ReadModelRepo) UpsertWalletSummary(ctx context.Context, s *domain.WalletSummary) error {
	query := `INSERT INTO wallet_read (wallet_id, owner_user_id, currency, status, type, name, balance_snapshot, members_active, is_default_for_user, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (wallet_id) DO UPDATE SET
			owner_user_id = EXCLUDED.owner_user_id,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			type = EXCLUDED.type,
			name = EXCLUDED.name,
			balance_snapshot = EXCLUDED.balance_snapshot,
			members_active = EXCLUDED.members_active,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		s.WalletID, s.OwnerUserID, s.Currency, s.Status, s.Type, s.Name,
		s.BalanceSnapshot, s.MembersActive, s.IsDefaultForUser, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert wallet summary: %w", err)
	}
	return nil
}

// GetWalletSummary fetches a summary row. Returns nil, nil when absent.
func (r *ReadModelRepo) GetWalletSummary(ctx context.Context, walletID uuid.UUID) (*domain.WalletSummary, error) {
	query := `SELECT wallet_id, owner_user_id, currency, status, type, name, balance_snapshot, members_active, is_default_for_user, created_at, updated_at
		FROM wallet_read WHERE wallet_id = $1`

	s := &domain.WalletSummary{}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&s.WalletID, &s.OwnerUserID, &s.Currency, &s.Status, &s.Type, &s.Name,
		&s.BalanceSnapshot, &s.MembersActive, &s.IsDefaultForUser, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet summary: %w", err)
	}
	return s, nil
}

// UpdateBalanceSnapshot overwrites only the denormalized balance.
func (r *ReadModelRepo) UpdateBalanceSnapshot(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE wallet_read SET balance_snapshot = $2, updated_at = NOW() WHERE wallet_id = $1`

	if _, err := r.pool.Exec(ctx, query, walletID, balance); err != nil {
		return fmt.Errorf("update balance snapshot: %w", err)
	}
	return nil
}

// UpsertMemberSummary inserts or overwrites a member summary row.
func (r *ReadModelRepo) UpsertMemberSummary(ctx context.Context, m *domain.MemberSummary) error {
	query := `INSERT INTO wallet_member_read (wallet_id, user_id, role, status, per_tx_limit, daily_limit, weekly_limit, monthly_limit, joined_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (wallet_id, user_id) DO UPDATE SET
			role = EXCLUDED.role,
			status = EXCLUDED.status,
			per_tx_limit = EXCLUDED.per_tx_limit,
			daily_limit = EXCLUDED.daily_limit,
			weekly_limit = EXCLUDED.weekly_limit,
			monthly_limit = EXCLUDED.monthly_limit,
			joined_at = COALESCE(wallet_member_read.joined_at, EXCLUDED.joined_at),
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		m.WalletID, m.UserID, m.Role, m.Status,
		m.PerTxLimit, m.DailyLimit, m.WeeklyLimit, m.MonthlyLimit,
		m.JoinedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert member summary: %w", err)
	}
	return nil
}

// UpsertMembershipIndex inserts or overwrites a userId -> walletId index row.
func (r *ReadModelRepo) UpsertMembershipIndex(ctx context.Context, e *domain.MembershipIndexEntry) error {
	query := `INSERT INTO user_wallet_read (user_id, wallet_id, is_owner, wallet_type, wallet_status, wallet_name, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, wallet_id) DO UPDATE SET
			is_owner = EXCLUDED.is_owner,
			wallet_type = EXCLUDED.wallet_type,
			wallet_status = EXCLUDED.wallet_status,
			wallet_name = EXCLUDED.wallet_name,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		e.UserID, e.WalletID, e.IsOwner, e.WalletType, e.WalletStatus, e.WalletName, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert membership index: %w", err)
	}
	return nil
}

// recountQuery refreshes the denormalized active-member count.
const recountQuery = `UPDATE wallet_read SET members_active = (
		SELECT COUNT(*) FROM wallet_member_read
		WHERE wallet_id = $1 AND status = 'ACTIVE'
	), updated_at = NOW()
	WHERE wallet_id = $1`

// RecountActiveMembers refreshes the denormalized active-member count.
func (r *ReadModelRepo) RecountActiveMembers(ctx context.Context, walletID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, recountQuery, walletID); err != nil {
		return fmt.Errorf("recount active members: %w", err)
	}
	return nil
}

// SetDefaultWallet moves the default-wallet pointer in one transaction:
// unset the previous default, set the new one, upsert the preference row.
// No intermediate state with zero or two defaults is ever visible.
func (r *ReadModelRepo) SetDefaultWallet(ctx context.Context, userID, walletID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin default-wallet tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	unset := `UPDATE wallet_read SET is_default_for_user = FALSE, updated_at = NOW()
		WHERE is_default_for_user = TRUE AND wallet_id IN (
			SELECT default_wallet_id FROM user_receive_prefs WHERE user_id = $1
		)`
	if _, err := tx.Exec(ctx, unset, userID); err != nil {
		return fmt.Errorf("unset previous default: %w", err)
	}

	set := `UPDATE wallet_read SET is_default_for_user = TRUE, updated_at = NOW() WHERE wallet_id = $1`
	tag, err := tx.Exec(ctx, set, walletID)
	if err != nil {
		return fmt.Errorf("set new default: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet summary not found: %s", walletID)
	}

	pref := `INSERT INTO user_receive_prefs (user_id, default_wallet_id, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			default_wallet_id = EXCLUDED.default_wallet_id,
			updated_at = NOW()`
	if _, err := tx.Exec(ctx, pref, userID, walletID); err != nil {
		return fmt.Errorf("upsert receive preference: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit default-wallet tx: %w", err)
	}
	return nil
}

// GetDefaultWallet resolves the user's default wallet summary. Returns
// nil, nil when the user has no preference row.
func (r *ReadModelRepo) GetDefaultWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletSummary, error) {
	query := `SELECT w.wallet_id, w.owner_user_id, w.currency, w.status, w.type, w.name, w.balance_snapshot, w.members_active, w.is_default_for_user, w.created_at, w.updated_at
		FROM user_receive_prefs p
		JOIN wallet_read w ON w.wallet_id = p.default_wallet_id
		WHERE p.user_id = $1`

	s := &domain.WalletSummary{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.WalletID, &s.OwnerUserID, &s.Currency, &s.Status, &s.Type, &s.Name,
		&s.BalanceSnapshot, &s.MembersActive, &s.IsDefaultForUser, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default wallet: %w", err)
	}
	return s, nil
}

// RemoveWalletMembers bulk-removes member and index rows for a wallet.
// The only hard delete on the read model, driven by the members-cleared event.
func (r *ReadModelRepo) RemoveWalletMembers(ctx context.Context, walletID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin members-clear tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM wallet_member_read WHERE wallet_id = $1 AND role <> 'OWNER'`, walletID); err != nil {
		return fmt.Errorf("delete member summaries: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_wallet_read WHERE wallet_id = $1 AND is_owner = FALSE`, walletID); err != nil {
		return fmt.Errorf("delete membership index rows: %w", err)
	}
	if _, err := tx.Exec(ctx, recountQuery, walletID); err != nil {
		return fmt.Errorf("recount active members: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit members-clear tx: %w", err)
	}
	return nil
}
