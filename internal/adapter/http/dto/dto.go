package dto

import (
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Type         string `json:"type" binding:"required,oneof=PERSONAL SHARED"`
	Name         string `json:"name" binding:"required,min=1,max=100"`
	SetAsDefault bool   `json:"set_as_default"`
}

// UpdateWalletRequest is the request body for wallet mutation. At least one
// field must be present; the service enforces that.
type UpdateWalletRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE SUSPENDED CLOSED"`
}

// BalanceValidateRequest asks whether a debit or credit would be accepted.
type BalanceValidateRequest struct {
	WalletID string          `json:"wallet_id" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"`
	Action   string          `json:"action" binding:"required,oneof=DEBIT CREDIT"`
}

// BalanceUpdateRequest applies a signed delta to a wallet balance.
type BalanceUpdateRequest struct {
	WalletID    string          `json:"wallet_id" binding:"required,uuid"`
	Delta       decimal.Decimal `json:"delta"`
	ReferenceID string          `json:"reference_id" binding:"required,max=100"`
	Reason      string          `json:"reason" binding:"omitempty,max=100"`
	ActorUserID string          `json:"actor_user_id" binding:"omitempty,uuid"`
}

// RoleValidateRequest authorizes an action by a user on a wallet.
type RoleValidateRequest struct {
	WalletID     string           `json:"wallet_id" binding:"required,uuid"`
	UserID       string           `json:"user_id" binding:"required,uuid"`
	Action       string           `json:"action" binding:"required,oneof=DEBIT CREDIT ADMIN"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	TransferType string           `json:"transfer_type,omitempty" binding:"omitempty,oneof=INTERNAL EXTERNAL"`
}

// InviteRequest is the request body for generating a member invite.
type InviteRequest struct {
	Phone string `json:"phone" binding:"required,e164_phone"`
	Role  string `json:"role" binding:"required,oneof=ADMIN MEMBER VIEWER"`
}

// VerifyCodeRequest binds a one-time code to the invite token.
type VerifyCodeRequest struct {
	Token string `json:"token" binding:"required"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// AcceptInviteRequest consumes a verified, bound invite token.
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// WalletResponse is the wallet representation returned to clients.
type WalletResponse struct {
	ID               string          `json:"id"`
	OwnerUserID      string          `json:"owner_user_id"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	Type             string          `json:"type"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	IsDefaultForUser bool            `json:"is_default_for_user"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ClearMembersResponse reports a bulk member removal.
type ClearMembersResponse struct {
	WalletID       string `json:"wallet_id"`
	MembersCleared int64  `json:"members_cleared"`
}

// DefaultWalletResponse is the read-model view of a user's default wallet.
type DefaultWalletResponse struct {
	WalletID        string          `json:"wallet_id"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	BalanceSnapshot decimal.Decimal `json:"balance_snapshot"`
}

// ToWalletResponse maps a domain wallet to its API shape.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:               w.ID.String(),
		OwnerUserID:      w.OwnerUserID.String(),
		Currency:         w.Currency,
		Status:           string(w.Status),
		Type:             string(w.Type),
		Name:             w.Name,
		Balance:          w.Balance,
		IsDefaultForUser: w.IsDefaultForUser,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

// ToDefaultWalletResponse maps a wallet summary to the default-wallet view.
func ToDefaultWalletResponse(s *domain.WalletSummary) DefaultWalletResponse {
	return DefaultWalletResponse{
		WalletID:        s.WalletID.String(),
		Currency:        s.Currency,
		Status:          string(s.Status),
		Type:            string(s.Type),
		Name:            s.Name,
		BalanceSnapshot: s.BalanceSnapshot,
	}
}
