package service

import (
	"context"
	"fmt"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Decision and result codes for balance checks.
const (
	CodeBalanceOK          = "BALANCE_OK"
	CodeBalanceUpdated     = "BALANCE_UPDATED"
	CodeInsufficientFunds  = "INSUFFICIENT_BALANCE"
	CodeWalletNotActive    = "WALLET_NOT_ACTIVE"
	CodeCreditNotPermitted = "CREDIT_NOT_PERMITTED"
)

// BalanceServiceImpl implements ports.BalanceService over the authoritative
// wallet rows. Update is a single conditional statement, so no lock is held
// and a rejected mutation touches nothing.
type BalanceServiceImpl struct {
	walletRepo ports.WalletRepository
	events     ports.EventLog
	log        zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(walletRepo ports.WalletRepository, events ports.EventLog, log zerolog.Logger) *BalanceServiceImpl {
	return &BalanceServiceImpl{walletRepo: walletRepo, events: events, log: log}
}

// Validate is an advisory read: it answers "would this amount clear right
// now". It holds no reservation, so a concurrent debit can still win.
func (s *BalanceServiceImpl) Validate(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, action domain.Action) (ports.Decision, error) {
	if amount.IsNegative() {
		return ports.Decision{}, apperror.Validation("amount must not be negative")
	}

	view, err := s.walletRepo.View(ctx, walletID)
	if err != nil {
		return ports.Decision{}, apperror.ErrDatabase(fmt.Errorf("read wallet view: %w", err))
	}
	if view == nil {
		return ports.Decision{}, apperror.ErrWalletNotFound()
	}

	if view.Status != domain.WalletStatusActive {
		return ports.Decision{
			Allowed: false,
			Code:    CodeWalletNotActive,
			Message: fmt.Sprintf("wallet is %s", view.Status),
		}, nil
	}

	if action == domain.ActionDebit && view.Balance.LessThan(amount) {
		return ports.Decision{
			Allowed: false,
			Code:    CodeInsufficientFunds,
			Message: "balance is lower than the requested amount",
			Extras:  map[string]any{"balance": view.Balance.String()},
		}, nil
	}

	return ports.Decision{Allowed: true, Code: CodeBalanceOK}, nil
}

// Update applies a signed delta in one conditional statement. The statement
// matches only when the wallet is ACTIVE and the result stays non-negative;
// zero rows means the condition rejected it, and a follow-up read classifies
// which condition failed.
func (s *BalanceServiceImpl) Update(ctx context.Context, req ports.BalanceUpdateRequest) (ports.BalanceUpdateResult, error) {
	if req.ReferenceID == "" {
		return ports.BalanceUpdateResult{}, apperror.Validation("reference_id is required")
	}

	delta := domain.Money(req.Delta)

	newBalance, err := s.walletRepo.AdjustBalance(ctx, req.WalletID, delta)
	if err != nil {
		return ports.BalanceUpdateResult{}, apperror.ErrDatabase(fmt.Errorf("adjust balance: %w", err))
	}
	if newBalance == nil {
		return s.classifyRejection(ctx, req.WalletID)
	}

	previous := newBalance.Sub(delta)

	env, err := domain.NewEnvelope(domain.EventWalletBalanceUpdated, 1, req.WalletID.String(), domain.WalletBalanceUpdatedPayload{
		WalletID:        req.WalletID,
		PreviousBalance: previous,
		NewBalance:      *newBalance,
		Delta:           delta,
		ReferenceID:     req.ReferenceID,
		Reason:          req.Reason,
		ActorUserID:     req.ActorUserID,
		OccurredAt:      time.Now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", req.WalletID.String()).Msg("balance event build failed")
	} else if err := s.events.Publish(ctx, env); err != nil {
		s.log.Error().Err(err).
			Str("wallet_id", req.WalletID.String()).
			Str("reference_id", req.ReferenceID).
			Msg("balance event publish failed; read model will lag")
	}

	s.log.Info().
		Str("wallet_id", req.WalletID.String()).
		Str("delta", delta.String()).
		Str("reference_id", req.ReferenceID).
		Msg("balance updated")

	return ports.BalanceUpdateResult{
		WalletID:        req.WalletID,
		PreviousBalance: &previous,
		NewBalance:      newBalance,
		Code:            CodeBalanceUpdated,
	}, nil
}

// classifyRejection tells apart "not found", "not active" and "insufficient"
// after a zero-row conditional update. The read is unlocked: the answer is a
// best-effort explanation, not a second verdict.
func (s *BalanceServiceImpl) classifyRejection(ctx context.Context, walletID uuid.UUID) (ports.BalanceUpdateResult, error) {
	view, err := s.walletRepo.View(ctx, walletID)
	if err != nil {
		return ports.BalanceUpdateResult{}, apperror.ErrDatabase(fmt.Errorf("classify rejection: %w", err))
	}
	if view == nil {
		return ports.BalanceUpdateResult{}, apperror.ErrWalletNotFound()
	}
	if view.Status != domain.WalletStatusActive {
		return ports.BalanceUpdateResult{
			WalletID: walletID,
			Code:     CodeWalletNotActive,
			Message:  fmt.Sprintf("wallet is %s", view.Status),
		}, nil
	}
	// Nothing moved, so previous and new are both the balance at read time.
	balance := view.Balance
	return ports.BalanceUpdateResult{
		WalletID:        walletID,
		PreviousBalance: &balance,
		NewBalance:      &balance,
		Code:            CodeInsufficientFunds,
		Message:         "balance is lower than the requested amount",
	}, nil
}
