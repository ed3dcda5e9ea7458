package ports

import (
	"context"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeginResult is the outcome of consulting the idempotency ledger.
// Fresh means the caller owns the execution; otherwise Replay carries the
// stored response byte-for-byte.
type BeginResult struct {
	Fresh          bool
	ResponseStatus int
	Response       []byte
}

// IdempotencyService deduplicates mutating commands keyed by (scope, key).
type IdempotencyService interface {
	Begin(ctx context.Context, scope, key string, body any) (BeginResult, error)
	Complete(ctx context.Context, scope, key string, responseStatus int, response []byte) error
	Fail(ctx context.Context, scope, key string)
}

// Decision is a policy/balance verdict returned as a value, never an error.
type Decision struct {
	Allowed       bool              `json:"allowed"`
	Code          string            `json:"code"`
	Message       string            `json:"message"`
	EffectiveRole domain.MemberRole `json:"effective_role,omitempty"`
	Extras        map[string]any    `json:"extras,omitempty"`
}

// BalanceUpdateRequest mutates a wallet balance. ReferenceID is the caller's
// reconciliation anchor, independent of the idempotency ledger.
type BalanceUpdateRequest struct {
	WalletID    uuid.UUID       `json:"wallet_id"`
	Delta       decimal.Decimal `json:"delta"`
	ReferenceID string          `json:"reference_id"`
	Reason      string          `json:"reason"`
	ActorUserID uuid.UUID       `json:"actor_user_id"`
}

// BalanceUpdateResult reports the applied mutation or the denial code.
type BalanceUpdateResult struct {
	WalletID        uuid.UUID        `json:"wallet_id"`
	PreviousBalance *decimal.Decimal `json:"previous_balance,omitempty"`
	NewBalance      *decimal.Decimal `json:"new_balance,omitempty"`
	Code            string           `json:"code"`
	Message         string           `json:"message"`
}

// BalanceService is the authoritative balance store surface.
type BalanceService interface {
	Validate(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, action domain.Action) (Decision, error)
	Update(ctx context.Context, req BalanceUpdateRequest) (BalanceUpdateResult, error)
}

// RoleValidateRequest authorizes an action by a user on a wallet.
type RoleValidateRequest struct {
	WalletID     uuid.UUID        `json:"wallet_id"`
	UserID       uuid.UUID        `json:"user_id"`
	Action       domain.Action    `json:"action"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	TransferType string           `json:"transfer_type,omitempty"`
}

// PolicyService evaluates role/wallet-type authorization and limits.
type PolicyService interface {
	ValidateRole(ctx context.Context, req RoleValidateRequest) (Decision, error)
}

// CreateWalletRequest is the create-wallet command body.
type CreateWalletRequest struct {
	OwnerUserID  uuid.UUID         `json:"owner_user_id"`
	Type         domain.WalletType `json:"type"`
	Name         string            `json:"name"`
	SetAsDefault bool              `json:"set_as_default"`
}

// UpdateWalletRequest mutates wallet name and/or status.
type UpdateWalletRequest struct {
	WalletID    uuid.UUID            `json:"wallet_id"`
	ActorUserID uuid.UUID            `json:"actor_user_id"`
	Name        *string              `json:"name,omitempty"`
	Status      *domain.WalletStatus `json:"status,omitempty"`
}

// WalletService is the wallet command surface.
type WalletService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest, idempotencyKey string) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, req UpdateWalletRequest) (*domain.Wallet, error)
	ClearMembers(ctx context.Context, walletID, actorUserID uuid.UUID) (int64, error)
	GetDefaultWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletSummary, error)
}

// GeneratedInvite is returned to the inviter; the plaintext code is for
// out-of-band delivery only and never appears in the token.
type GeneratedInvite struct {
	PhoneMasked string `json:"phone_masked"`
	Link        string `json:"link"`
	Code        string `json:"code"`
}

// InviteInspection reports token validity without consuming an attempt.
type InviteInspection struct {
	Status      string            `json:"status"` // VALID, VERIFIED or EXPIRED
	WalletID    uuid.UUID         `json:"wallet_id,omitempty"`
	Role        domain.MemberRole `json:"role,omitempty"`
	PhoneMasked string            `json:"phone_masked,omitempty"`
	ExpiresAt   time.Time         `json:"expires_at,omitempty"`
}

// VerifyCodeResult is the outcome of checking the one-time code.
type VerifyCodeResult struct {
	Status      string    `json:"status"` // VERIFIED, INVALID_CODE or EXPIRED
	WalletID    uuid.UUID `json:"wallet_id"`
	PhoneMasked string    `json:"phone_masked,omitempty"`
	Verified    bool      `json:"verified"`
	BoundToken  string    `json:"bound_token,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MemberActionResult reports a membership mutation.
type MemberActionResult struct {
	WalletID    uuid.UUID           `json:"wallet_id"`
	UserID      uuid.UUID           `json:"user_id"`
	StatusAfter domain.MemberStatus `json:"status_after"`
	OccurredAt  time.Time           `json:"occurred_at"`
	Message     string              `json:"message"`
}

// InviteService runs the invitation lifecycle.
type InviteService interface {
	Generate(ctx context.Context, walletID, inviterUserID uuid.UUID, phone string, role domain.MemberRole, idempotencyKey string) (*GeneratedInvite, error)
	Inspect(ctx context.Context, token string) (*InviteInspection, error)
	VerifyCode(ctx context.Context, token, code string, callerUserID uuid.UUID) (*VerifyCodeResult, error)
	AcceptToken(ctx context.Context, token string, callerUserID uuid.UUID) (*MemberActionResult, error)
}

// Projector applies envelopes to the read model. Apply is idempotent.
type Projector interface {
	Apply(ctx context.Context, env domain.Envelope) error
	Run(ctx context.Context) error
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
