package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PolicyRepo implements ports.PolicyRepository over the wallet_type_policy
// reference table. allowed_debit_roles is stored as a jsonb array.
type PolicyRepo struct {
	pool Pool
}

// NewPolicyRepo creates a new PolicyRepo.
func NewPolicyRepo(pool Pool) *PolicyRepo {
	return &PolicyRepo{pool: pool}
}

// GetByType fetches the policy row for a wallet type. Returns nil, nil when absent.
func (r *PolicyRepo) GetByType(ctx context.Context, t domain.WalletType) (*domain.WalletTypePolicy, error) {
	query := `SELECT type, max_members, default_daily_cap, default_monthly_cap, allow_external_credit, allowed_debit_roles, updated_at
		FROM wallet_type_policy WHERE type = $1`

	return r.scanPolicy(r.pool.QueryRow(ctx, query, t))
}

// GetForWallet resolves a wallet's policy and currency in one query.
func (r *PolicyRepo) GetForWallet(ctx context.Context, walletID uuid.UUID) (*domain.WalletTypePolicy, string, error) {
	query := `SELECT p.type, p.max_members, p.default_daily_cap, p.default_monthly_cap, p.allow_external_credit, p.allowed_debit_roles, p.updated_at, w.currency
		FROM wallets w
		JOIN wallet_type_policy p ON p.type = w.type
		WHERE w.id = $1`

	p := &domain.WalletTypePolicy{}
	var rolesRaw []byte
	var currency string
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&p.Type, &p.MaxMembers, &p.DefaultDailyCap, &p.DefaultMonthlyCap,
		&p.AllowExternalCredit, &rolesRaw, &p.UpdatedAt, &currency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("get policy for wallet: %w", err)
	}
	if err := json.Unmarshal(rolesRaw, &p.AllowedDebitRoles); err != nil {
		return nil, "", fmt.Errorf("decode allowed debit roles: %w", err)
	}
	return p, currency, nil
}

func (r *PolicyRepo) scanPolicy(row pgx.Row) (*domain.WalletTypePolicy, error) {
	p := &domain.WalletTypePolicy{}
	var rolesRaw []byte
	err := row.Scan(
		&p.Type, &p.MaxMembers, &p.DefaultDailyCap, &p.DefaultMonthlyCap,
		&p.AllowExternalCredit, &rolesRaw, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet type policy: %w", err)
	}
	if err := json.Unmarshal(rolesRaw, &p.AllowedDebitRoles); err != nil {
		return nil, fmt.Errorf("decode allowed debit roles: %w", err)
	}
	return p, nil
}
