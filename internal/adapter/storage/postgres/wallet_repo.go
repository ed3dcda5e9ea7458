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

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet within a database transaction.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, owner_user_id, currency, status, type, name, balance, is_default_for_user, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.OwnerUserID, w.Currency, w.Status, w.Type, w.Name,
		w.Balance, w.IsDefaultForUser, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, owner_user_id, currency, status, type, name, balance, is_default_for_user, created_at, updated_at
		FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.OwnerUserID, &w.Currency, &w.Status, &w.Type, &w.Name,
		&w.Balance, &w.IsDefaultForUser, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet with a row lock. Used only by multi-step
// flows (members clear, invite accept); plain balance mutation goes through
// AdjustBalance instead. MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, owner_user_id, currency, status, type, name, balance, is_default_for_user, created_at, updated_at
		FROM wallets WHERE id = $1 FOR UPDATE`

	w := &domain.Wallet{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.OwnerUserID, &w.Currency, &w.Status, &w.Type, &w.Name,
		&w.Balance, &w.IsDefaultForUser, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// View reads status and balance without locking. Pure read for validation.
func (r *WalletRepo) View(ctx context.Context, id uuid.UUID) (*ports.WalletView, error) {
	query := `SELECT status, balance FROM wallets WHERE id = $1`

	v := &ports.WalletView{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.Status, &v.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("view wallet: %w", err)
	}
	return v, nil
}

// AdjustBalance applies delta in one conditional statement. The WHERE clause
// is the concurrency guard: under concurrent debits only deltas that keep the
// balance >= 0 commit, with no read-then-write window.
func (r *WalletRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*decimal.Decimal, error) {
	query := `UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE' AND balance + $2 >= 0
		RETURNING balance`

	var newBalance decimal.Decimal
	err := r.pool.QueryRow(ctx, query, id, delta).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("adjust wallet balance: %w", err)
	}
	return &newBalance, nil
}

// UpdateInfo overwrites the mutable wallet fields within a transaction.
func (r *WalletRepo) UpdateInfo(ctx context.Context, tx pgx.Tx, id uuid.UUID, name string, status domain.WalletStatus) error {
	query := `UPDATE wallets SET name = $2, status = $3, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, name, status)
	if err != nil {
		return fmt.Errorf("update wallet info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", id)
	}
	return nil
}
