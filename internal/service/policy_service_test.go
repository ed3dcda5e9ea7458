package service

import (
	"context"
	"testing"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type policyTestDeps struct {
	svc        *PolicyServiceImpl
	walletRepo *mocks.MockWalletRepository
	memberRepo *mocks.MockMemberRepository
	policyRepo *mocks.MockPolicyRepository
	ctrl       *gomock.Controller
}

func setupPolicyService(t *testing.T) *policyTestDeps {
	ctrl := gomock.NewController(t)
	d := &policyTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		memberRepo: mocks.NewMockMemberRepository(ctrl),
		policyRepo: mocks.NewMockPolicyRepository(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewPolicyService(d.walletRepo, d.memberRepo, d.policyRepo, zerolog.Nop())
	return d
}

func activeWalletView() *ports.WalletView {
	return &ports.WalletView{Status: domain.WalletStatusActive, Balance: decimal.RequireFromString("100.00")}
}

func sharedPolicy() *domain.WalletTypePolicy {
	return &domain.WalletTypePolicy{
		Type:                domain.WalletTypeShared,
		MaxMembers:          10,
		AllowExternalCredit: true,
		AllowedDebitRoles:   []domain.MemberRole{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember},
	}
}

func TestPolicyService_ValidateRole_DebitAllowed(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()
	amount := decimal.RequireFromString("50.00")

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleMember, Status: domain.MemberStatusActive,
	}, nil)
	d.policyRepo.EXPECT().GetForWallet(ctx, walletID).Return(sharedPolicy(), "IDR", nil)
	d.memberRepo.EXPECT().PerTxLimit(ctx, walletID, userID).Return(decimal.RequireFromString("100.00"), nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionDebit, Amount: &amount,
	})
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, domain.RoleMember, dec.EffectiveRole)
}

func TestPolicyService_ValidateRole_ViewerCannotDebit(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleViewer, Status: domain.MemberStatusActive,
	}, nil)
	d.policyRepo.EXPECT().GetForWallet(ctx, walletID).Return(sharedPolicy(), "IDR", nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionDebit,
	})
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, CodeRoleNotAllowed, dec.Code)
}

func TestPolicyService_ValidateRole_PerTxLimitExceeded(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()
	amount := decimal.RequireFromString("500.00")

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleMember, Status: domain.MemberStatusActive,
	}, nil)
	d.policyRepo.EXPECT().GetForWallet(ctx, walletID).Return(sharedPolicy(), "IDR", nil)
	d.memberRepo.EXPECT().PerTxLimit(ctx, walletID, userID).Return(decimal.RequireFromString("100.00"), nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionDebit, Amount: &amount,
	})
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, CodePerTxLimitExceeded, dec.Code)
}

func TestPolicyService_ValidateRole_ZeroLimitMeansUnconfigured(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()
	amount := decimal.RequireFromString("500.00")

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleAdmin, Status: domain.MemberStatusActive,
	}, nil)
	d.policyRepo.EXPECT().GetForWallet(ctx, walletID).Return(sharedPolicy(), "IDR", nil)
	d.memberRepo.EXPECT().PerTxLimit(ctx, walletID, userID).Return(decimal.Zero, nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionDebit, Amount: &amount,
	})
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
}

func TestPolicyService_ValidateRole_NotAMember(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(nil, nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionDebit,
	})
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, CodeNotAMember, dec.Code)
}

func TestPolicyService_ValidateRole_SuspendedMember(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleMember, Status: domain.MemberStatusSuspended,
	}, nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionCredit,
	})
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, CodeMemberNotActive, dec.Code)
}

func TestPolicyService_ValidateRole_AdminAction(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleMember, Status: domain.MemberStatusActive,
	}, nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionAdmin,
	})
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, CodeRoleNotAllowed, dec.Code)
}

func TestPolicyService_ValidateRole_ExternalCreditBlocked(t *testing.T) {
	d := setupPolicyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID, userID := uuid.New(), uuid.New()

	policy := sharedPolicy()
	policy.AllowExternalCredit = false

	d.walletRepo.EXPECT().View(ctx, walletID).Return(activeWalletView(), nil)
	d.memberRepo.EXPECT().ViewRoleAndStatus(ctx, walletID, userID).Return(&ports.MemberView{
		Role: domain.RoleMember, Status: domain.MemberStatusActive,
	}, nil)
	d.policyRepo.EXPECT().GetForWallet(ctx, walletID).Return(policy, "IDR", nil)

	dec, err := d.svc.ValidateRole(ctx, ports.RoleValidateRequest{
		WalletID: walletID, UserID: userID, Action: domain.ActionCredit, TransferType: TransferTypeExternal,
	})
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, CodeExternalCreditOff, dec.Code)
}
