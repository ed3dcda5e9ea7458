package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberRole is the authorization role of a wallet member.
type MemberRole string

const (
	RoleOwner  MemberRole = "OWNER"
	RoleAdmin  MemberRole = "ADMIN"
	RoleMember MemberRole = "MEMBER"
	RoleViewer MemberRole = "VIEWER"
)

// MemberStatus is the lifecycle state of a membership.
type MemberStatus string

const (
	MemberStatusInvited   MemberStatus = "INVITED"
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusSuspended MemberStatus = "SUSPENDED"
	MemberStatusRemoved   MemberStatus = "REMOVED"
)

// Action is the kind of operation being authorized against a wallet.
type Action string

const (
	ActionDebit  Action = "DEBIT"
	ActionCredit Action = "CREDIT"
	ActionAdmin  Action = "ADMIN"
)

// WalletMember is a (walletId, userId) membership row with spending limits.
// Zero-valued limits mean "not configured".
type WalletMember struct {
	WalletID     uuid.UUID       `json:"wallet_id"`
	UserID       uuid.UUID       `json:"user_id"`
	Role         MemberRole      `json:"role"`
	Status       MemberStatus    `json:"status"`
	Alias        string          `json:"alias,omitempty"`
	PerTxLimit   decimal.Decimal `json:"per_tx_limit"`
	DailyLimit   decimal.Decimal `json:"daily_limit"`
	WeeklyLimit  decimal.Decimal `json:"weekly_limit"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	JoinedAt     *time.Time      `json:"joined_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ValidMemberRole reports whether r is a known role.
func ValidMemberRole(r MemberRole) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// ValidAction reports whether a is a known action.
func ValidAction(a Action) bool {
	switch a {
	case ActionDebit, ActionCredit, ActionAdmin:
		return true
	}
	return false
}
