package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletSummary is the denormalized query-side wallet row. Derived and
// rebuildable; eventually consistent with the authoritative store.
type WalletSummary struct {
	WalletID         uuid.UUID       `json:"wallet_id"`
	OwnerUserID      uuid.UUID       `json:"owner_user_id"`
	Currency         string          `json:"currency"`
	Status           WalletStatus    `json:"status"`
	Type             WalletType      `json:"type"`
	Name             string          `json:"name"`
	BalanceSnapshot  decimal.Decimal `json:"balance_snapshot"`
	MembersActive    int             `json:"members_active"`
	IsDefaultForUser bool            `json:"is_default_for_user"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MemberSummary mirrors a membership row on the query side.
type MemberSummary struct {
	WalletID     uuid.UUID       `json:"wallet_id"`
	UserID       uuid.UUID       `json:"user_id"`
	Role         MemberRole      `json:"role"`
	Status       MemberStatus    `json:"status"`
	PerTxLimit   decimal.Decimal `json:"per_tx_limit"`
	DailyLimit   decimal.Decimal `json:"daily_limit"`
	WeeklyLimit  decimal.Decimal `json:"weekly_limit"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	JoinedAt     *time.Time      `json:"joined_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MembershipIndexEntry maps a user to a wallet for fast "my wallets" lookups,
// with denormalized wallet fields.
type MembershipIndexEntry struct {
	UserID       uuid.UUID    `json:"user_id"`
	WalletID     uuid.UUID    `json:"wallet_id"`
	IsOwner      bool         `json:"is_owner"`
	WalletType   WalletType   `json:"wallet_type"`
	WalletStatus WalletStatus `json:"wallet_status"`
	WalletName   string       `json:"wallet_name"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// UserReceivePreference points at a user's default receiving wallet.
// At most one wallet per user carries is_default_for_user on the summary side.
type UserReceivePreference struct {
	UserID          uuid.UUID `json:"user_id"`
	DefaultWalletID uuid.UUID `json:"default_wallet_id"`
	UpdatedAt       time.Time `json:"updated_at"`
}
