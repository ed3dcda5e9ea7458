package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed-point scale for all balances and deltas.
const MoneyScale = 2

// WalletStatus is the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive    WalletStatus = "ACTIVE"
	WalletStatusSuspended WalletStatus = "SUSPENDED"
	WalletStatusClosed    WalletStatus = "CLOSED"
)

// WalletType selects the policy reference data that governs a wallet.
type WalletType string

const (
	WalletTypePersonal WalletType = "PERSONAL"
	WalletTypeShared   WalletType = "SHARED"
)

// Wallet is the authoritative wallet row. Balance is a fixed-point decimal;
// it must never be observed below zero.
type Wallet struct {
	ID               uuid.UUID       `json:"id"`
	OwnerUserID      uuid.UUID       `json:"owner_user_id"`
	Currency         string          `json:"currency"`
	Status           WalletStatus    `json:"status"`
	Type             WalletType      `json:"type"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	IsDefaultForUser bool            `json:"is_default_for_user"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ValidWalletStatus reports whether s is a known status.
func ValidWalletStatus(s WalletStatus) bool {
	switch s {
	case WalletStatusActive, WalletStatusSuspended, WalletStatusClosed:
		return true
	}
	return false
}

// ValidWalletType reports whether t is a known type.
func ValidWalletType(t WalletType) bool {
	return t == WalletTypePersonal || t == WalletTypeShared
}

// Money normalizes d to the fixed money scale.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}
