package service

import (
	"context"
	"fmt"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// Decision codes for role checks.
const (
	CodeRoleAllowed        = "ROLE_ALLOWED"
	CodeNotAMember         = "NOT_A_MEMBER"
	CodeMemberNotActive    = "MEMBER_NOT_ACTIVE"
	CodeRoleNotAllowed     = "ROLE_NOT_ALLOWED"
	CodePerTxLimitExceeded = "PER_TX_LIMIT_EXCEEDED"
	CodeExternalCreditOff  = "EXTERNAL_CREDIT_NOT_ALLOWED"
)

// TransferTypeExternal marks credits originating outside the wallet system.
const TransferTypeExternal = "EXTERNAL"

// PolicyServiceImpl implements ports.PolicyService. Verdicts are advisory
// values: denial is a Decision, never an error, and nothing is reserved.
type PolicyServiceImpl struct {
	walletRepo ports.WalletRepository
	memberRepo ports.MemberRepository
	policyRepo ports.PolicyRepository
	log        zerolog.Logger
}

// NewPolicyService creates a new PolicyServiceImpl.
func NewPolicyService(
	walletRepo ports.WalletRepository,
	memberRepo ports.MemberRepository,
	policyRepo ports.PolicyRepository,
	log zerolog.Logger,
) *PolicyServiceImpl {
	return &PolicyServiceImpl{
		walletRepo: walletRepo,
		memberRepo: memberRepo,
		policyRepo: policyRepo,
		log:        log,
	}
}

// ValidateRole authorizes an action by a user on a wallet against membership
// state, wallet-type policy and the member's per-transaction limit.
func (s *PolicyServiceImpl) ValidateRole(ctx context.Context, req ports.RoleValidateRequest) (ports.Decision, error) {
	if !domain.ValidAction(req.Action) {
		return ports.Decision{}, apperror.Validation(fmt.Sprintf("unknown action %q", req.Action))
	}

	view, err := s.walletRepo.View(ctx, req.WalletID)
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

	member, err := s.memberRepo.ViewRoleAndStatus(ctx, req.WalletID, req.UserID)
	if err != nil {
		return ports.Decision{}, apperror.ErrDatabase(fmt.Errorf("read member view: %w", err))
	}
	if member == nil {
		return ports.Decision{
			Allowed: false,
			Code:    CodeNotAMember,
			Message: "user is not a member of this wallet",
		}, nil
	}
	if member.Status != domain.MemberStatusActive {
		return ports.Decision{
			Allowed:       false,
			Code:          CodeMemberNotActive,
			Message:       fmt.Sprintf("membership is %s", member.Status),
			EffectiveRole: member.Role,
		}, nil
	}

	switch req.Action {
	case domain.ActionAdmin:
		return s.decideAdmin(member.Role), nil
	case domain.ActionCredit:
		return s.decideCredit(ctx, req, member.Role)
	default:
		return s.decideDebit(ctx, req, member.Role)
	}
}

func (s *PolicyServiceImpl) decideAdmin(role domain.MemberRole) ports.Decision {
	if role != domain.RoleOwner && role != domain.RoleAdmin {
		return ports.Decision{
			Allowed:       false,
			Code:          CodeRoleNotAllowed,
			Message:       fmt.Sprintf("role %s cannot administer this wallet", role),
			EffectiveRole: role,
		}
	}
	return ports.Decision{Allowed: true, Code: CodeRoleAllowed, EffectiveRole: role}
}

func (s *PolicyServiceImpl) decideCredit(ctx context.Context, req ports.RoleValidateRequest, role domain.MemberRole) (ports.Decision, error) {
	if req.TransferType == TransferTypeExternal {
		policy, _, err := s.policyRepo.GetForWallet(ctx, req.WalletID)
		if err != nil {
			return ports.Decision{}, apperror.ErrDatabase(fmt.Errorf("read wallet policy: %w", err))
		}
		if policy == nil {
			return ports.Decision{}, apperror.ErrWalletNotFound()
		}
		if !policy.AllowExternalCredit {
			return ports.Decision{
				Allowed:       false,
				Code:          CodeExternalCreditOff,
				Message:       "wallet type does not accept external credits",
				EffectiveRole: role,
			}, nil
		}
	}
	// Any active member may receive internal credits.
	return ports.Decision{Allowed: true, Code: CodeRoleAllowed, EffectiveRole: role}, nil
}

func (s *PolicyServiceImpl) decideDebit(ctx context.Context, req ports.RoleValidateRequest, role domain.MemberRole) (ports.Decision, error) {
	policy, _, err := s.policyRepo.GetForWallet(ctx, req.WalletID)
	if err != nil {
		return ports.Decision{}, apperror.ErrDatabase(fmt.Errorf("read wallet policy: %w", err))
	}
	if policy == nil {
		return ports.Decision{}, apperror.ErrWalletNotFound()
	}

	if !policy.DebitRoleAllowed(role) {
		return ports.Decision{
			Allowed:       false,
			Code:          CodeRoleNotAllowed,
			Message:       fmt.Sprintf("role %s cannot debit this wallet", role),
			EffectiveRole: role,
		}, nil
	}

	if req.Amount != nil {
		limit, err := s.memberRepo.PerTxLimit(ctx, req.WalletID, req.UserID)
		if err != nil {
			return ports.Decision{}, apperror.ErrDatabase(fmt.Errorf("read per-tx limit: %w", err))
		}
		// Zero limit means not configured.
		if !limit.IsZero() && req.Amount.GreaterThan(limit) {
			return ports.Decision{
				Allowed:       false,
				Code:          CodePerTxLimitExceeded,
				Message:       "amount exceeds the member per-transaction limit",
				EffectiveRole: role,
				Extras:        map[string]any{"per_tx_limit": limit.String()},
			}, nil
		}
	}

	return ports.Decision{Allowed: true, Code: CodeRoleAllowed, EffectiveRole: role}, nil
}
