package service

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/config"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports/mocks"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inviteTestDeps struct {
	svc        *InviteServiceImpl
	walletRepo *mocks.MockWalletRepository
	memberRepo *mocks.MockMemberRepository
	policyRepo *mocks.MockPolicyRepository
	sessions   *mocks.MockInviteSessionStore
	idemSvc    *mocks.MockIdempotencyService
	events     *mocks.MockEventLog
	transactor *mocks.MockDBTransactor
	cfg        config.InviteConfig
	ctrl       *gomock.Controller
}

func setupInviteService(t *testing.T) *inviteTestDeps {
	ctrl := gomock.NewController(t)
	d := &inviteTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		memberRepo: mocks.NewMockMemberRepository(ctrl),
		policyRepo: mocks.NewMockPolicyRepository(ctrl),
		sessions:   mocks.NewMockInviteSessionStore(ctrl),
		idemSvc:    mocks.NewMockIdempotencyService(ctrl),
		events:     mocks.NewMockEventLog(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		cfg: config.InviteConfig{
			Secret:  "test-invite-secret",
			TTL:     10 * time.Minute,
			BaseURL: "https://wallet.example.com/invite",
		},
		ctrl: ctrl,
	}
	d.svc = NewInviteService(
		d.walletRepo, d.memberRepo, d.policyRepo, d.sessions,
		d.idemSvc, d.events, d.transactor, d.cfg, zerolog.Nop(),
	)
	return d
}

func sharedWallet(ownerID uuid.UUID) *domain.Wallet {
	return &domain.Wallet{
		ID:          uuid.New(),
		OwnerUserID: ownerID,
		Currency:    "IDR",
		Status:      domain.WalletStatusActive,
		Type:        domain.WalletTypeShared,
		Name:        "family",
	}
}

func TestInviteService_Generate_Success(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	wallet := sharedWallet(ownerID)
	phone := "+6281234567890"

	d.idemSvc.EXPECT().Begin(ctx, domain.ScopeMemberInvite, "idem-1", gomock.Any()).
		Return(ports.BeginResult{Fresh: true}, nil)
	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.policyRepo.EXPECT().GetByType(ctx, domain.WalletTypeShared).Return(&domain.WalletTypePolicy{
		Type: domain.WalletTypeShared, MaxMembers: 10,
	}, nil)
	d.memberRepo.EXPECT().CountByStatus(ctx, wallet.ID, gomock.Any()).Return(int64(2), nil)
	d.sessions.EXPECT().AcquireConflict(ctx, domain.InviteConflictKey(wallet.ID, phone), gomock.Any(), d.cfg.TTL).
		Return(true, nil)
	d.sessions.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), d.cfg.TTL).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	d.idemSvc.EXPECT().Complete(ctx, domain.ScopeMemberInvite, "idem-1", 201, gomock.Any()).Return(nil)

	invite, err := d.svc.Generate(ctx, wallet.ID, ownerID, phone, domain.RoleMember, "idem-1")
	require.NoError(t, err)
	require.NotNil(t, invite)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), invite.Code)
	assert.Equal(t, "+62812****90", invite.PhoneMasked)
	assert.True(t, strings.HasPrefix(invite.Link, d.cfg.BaseURL+"?token="))
}

func TestInviteService_Generate_LiveInviteConflict(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	wallet := sharedWallet(ownerID)
	phone := "+6281234567890"

	d.idemSvc.EXPECT().Begin(ctx, domain.ScopeMemberInvite, "idem-1", gomock.Any()).
		Return(ports.BeginResult{Fresh: true}, nil)
	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.policyRepo.EXPECT().GetByType(ctx, domain.WalletTypeShared).Return(&domain.WalletTypePolicy{
		Type: domain.WalletTypeShared, MaxMembers: 10,
	}, nil)
	d.memberRepo.EXPECT().CountByStatus(ctx, wallet.ID, gomock.Any()).Return(int64(2), nil)
	d.sessions.EXPECT().AcquireConflict(ctx, gomock.Any(), gomock.Any(), d.cfg.TTL).Return(false, nil)
	d.idemSvc.EXPECT().Fail(ctx, domain.ScopeMemberInvite, "idem-1")

	_, err := d.svc.Generate(ctx, wallet.ID, ownerID, phone, domain.RoleMember, "idem-1")
	require.Error(t, err)
	assert.Equal(t, "USER_ALREADY_INVITED", apperror.CodeOf(err))
}

func TestInviteService_Generate_PersonalWalletRejected(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	wallet := sharedWallet(ownerID)
	wallet.Type = domain.WalletTypePersonal

	d.idemSvc.EXPECT().Begin(ctx, domain.ScopeMemberInvite, "idem-1", gomock.Any()).
		Return(ports.BeginResult{Fresh: true}, nil)
	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.idemSvc.EXPECT().Fail(ctx, domain.ScopeMemberInvite, "idem-1")

	_, err := d.svc.Generate(ctx, wallet.ID, ownerID, "+6281234567890", domain.RoleMember, "idem-1")
	require.Error(t, err)
	assert.Equal(t, apperror.KindDenied, apperror.KindOf(err))
}

func TestInviteService_Generate_OwnerRoleRejected(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Generate(context.Background(), uuid.New(), uuid.New(), "+6281234567890", domain.RoleOwner, "idem-1")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperror.CodeOf(err))
}

func TestInviteService_Generate_MaxMembers(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	wallet := sharedWallet(ownerID)

	d.idemSvc.EXPECT().Begin(ctx, domain.ScopeMemberInvite, "idem-1", gomock.Any()).
		Return(ports.BeginResult{Fresh: true}, nil)
	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.policyRepo.EXPECT().GetByType(ctx, domain.WalletTypeShared).Return(&domain.WalletTypePolicy{
		Type: domain.WalletTypeShared, MaxMembers: 5,
	}, nil)
	d.memberRepo.EXPECT().CountByStatus(ctx, wallet.ID, gomock.Any()).Return(int64(5), nil)
	d.idemSvc.EXPECT().Fail(ctx, domain.ScopeMemberInvite, "idem-1")

	_, err := d.svc.Generate(ctx, wallet.ID, ownerID, "+6281234567890", domain.RoleMember, "idem-1")
	require.Error(t, err)
	assert.Equal(t, "MAX_MEMBERS_REACHED", apperror.CodeOf(err))
}

func TestInviteService_Inspect_Valid(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	nonce := uuid.NewString()
	expiresAt := time.Now().UTC().Add(5 * time.Minute)

	token, err := d.svc.signToken(walletID, nonce, nil, expiresAt)
	require.NoError(t, err)

	d.sessions.EXPECT().Get(ctx, domain.InviteSessionKey(walletID, nil, nonce)).Return(&domain.InviteSession{
		WalletID: walletID,
		Phone:    "+6281234567890",
		Role:     domain.RoleMember,
		Nonce:    nonce,
		Status:   domain.InviteStatusCreated,
	}, nil)

	insp, err := d.svc.Inspect(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, InviteStateValid, insp.Status)
	assert.Equal(t, walletID, insp.WalletID)
	assert.Equal(t, domain.RoleMember, insp.Role)
	assert.Equal(t, "+62812****90", insp.PhoneMasked)
}

func TestInviteService_Inspect_SessionGone(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	nonce := uuid.NewString()

	token, err := d.svc.signToken(walletID, nonce, nil, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	d.sessions.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)

	insp, err := d.svc.Inspect(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, InviteStateExpired, insp.Status)
}

func TestInviteService_Inspect_ExpiredToken(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	walletID := uuid.New()
	token, err := d.svc.signToken(walletID, uuid.NewString(), nil, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)

	insp, err := d.svc.Inspect(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, InviteStateExpired, insp.Status)
}

func TestInviteService_Inspect_GarbageToken(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Inspect(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, "INVALID_TOKEN", apperror.CodeOf(err))
}

func TestInviteService_VerifyCode_Success(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	callerID := uuid.New()
	nonce := uuid.NewString()
	expiresAt := time.Now().UTC().Add(5 * time.Minute)

	token, err := d.svc.signToken(walletID, nonce, nil, expiresAt)
	require.NoError(t, err)

	session := &domain.InviteSession{
		WalletID:    walletID,
		Phone:       "+6281234567890",
		Role:        domain.RoleMember,
		CodeHash:    domain.HashInviteCode("123456", d.cfg.Secret),
		Nonce:       nonce,
		MaxAttempts: domain.InviteMaxAttempts,
		Status:      domain.InviteStatusCreated,
	}

	anonKey := domain.InviteSessionKey(walletID, nil, nonce)
	boundKey := domain.InviteSessionKey(walletID, &callerID, nonce)

	d.sessions.EXPECT().Get(ctx, anonKey).Return(session, nil)
	d.sessions.EXPECT().Save(ctx, boundKey, gomock.Any(), gomock.Any()).Return(nil)
	d.sessions.EXPECT().Delete(ctx, anonKey).Return(nil)

	res, err := d.svc.VerifyCode(ctx, token, "123456", callerID)
	require.NoError(t, err)
	assert.Equal(t, InviteStateVerified, res.Status)
	assert.True(t, res.Verified)
	assert.NotEmpty(t, res.BoundToken)

	// The bound token resolves to the re-keyed session.
	claims, err := d.svc.parseToken(res.BoundToken)
	require.NoError(t, err)
	assert.Equal(t, callerID.String(), claims.UserID)
	assert.Equal(t, nonce, claims.Nonce)
}

func TestInviteService_VerifyCode_WrongCode(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	nonce := uuid.NewString()

	token, err := d.svc.signToken(walletID, nonce, nil, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	session := &domain.InviteSession{
		WalletID:    walletID,
		Phone:       "+6281234567890",
		CodeHash:    domain.HashInviteCode("123456", d.cfg.Secret),
		Nonce:       nonce,
		Attempts:    0,
		MaxAttempts: domain.InviteMaxAttempts,
		Status:      domain.InviteStatusCreated,
	}

	anonKey := domain.InviteSessionKey(walletID, nil, nonce)
	d.sessions.EXPECT().Get(ctx, anonKey).Return(session, nil)
	d.sessions.EXPECT().Save(ctx, anonKey, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, s *domain.InviteSession, _ time.Duration) error {
			assert.Equal(t, 1, s.Attempts)
			return nil
		})

	res, err := d.svc.VerifyCode(ctx, token, "999999", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, InviteStateBadCode, res.Status)
	assert.False(t, res.Verified)
}

func TestInviteService_VerifyCode_BurnsAfterMaxAttempts(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	nonce := uuid.NewString()
	phone := "+6281234567890"

	token, err := d.svc.signToken(walletID, nonce, nil, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	session := &domain.InviteSession{
		WalletID:    walletID,
		Phone:       phone,
		CodeHash:    domain.HashInviteCode("123456", d.cfg.Secret),
		Nonce:       nonce,
		Attempts:    domain.InviteMaxAttempts - 1,
		MaxAttempts: domain.InviteMaxAttempts,
		Status:      domain.InviteStatusCreated,
	}

	anonKey := domain.InviteSessionKey(walletID, nil, nonce)
	d.sessions.EXPECT().Get(ctx, anonKey).Return(session, nil)
	d.sessions.EXPECT().Delete(ctx, anonKey).Return(nil)
	d.sessions.EXPECT().ReleaseConflict(ctx, domain.InviteConflictKey(walletID, phone)).Return(nil)

	res, err := d.svc.VerifyCode(ctx, token, "999999", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, InviteStateExpired, res.Status)
}

func TestInviteService_AcceptToken_UnboundRejected(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	walletID := uuid.New()
	token, err := d.svc.signToken(walletID, uuid.NewString(), nil, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	_, err = d.svc.AcceptToken(context.Background(), token, uuid.New())
	require.Error(t, err)
	assert.Equal(t, "INVITE_NOT_VERIFIED", apperror.CodeOf(err))
}

func TestInviteService_AcceptToken_WrongAccount(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	walletID := uuid.New()
	boundTo := uuid.New()
	token, err := d.svc.signToken(walletID, uuid.NewString(), &boundTo, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	_, err = d.svc.AcceptToken(context.Background(), token, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.KindDenied, apperror.KindOf(err))
}

func TestInviteService_AcceptToken_Success(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	callerID := uuid.New()
	nonce := uuid.NewString()
	phone := "+6281234567890"
	tx := &mockTx{}

	token, err := d.svc.signToken(walletID, nonce, &callerID, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	boundKey := domain.InviteSessionKey(walletID, &callerID, nonce)
	d.sessions.EXPECT().Get(ctx, boundKey).Return(&domain.InviteSession{
		WalletID:    walletID,
		UserID:      &callerID,
		Phone:       phone,
		Role:        domain.RoleMember,
		Nonce:       nonce,
		MaxAttempts: domain.InviteMaxAttempts,
		Status:      domain.InviteStatusVerified,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(&domain.Wallet{
		ID:          walletID,
		OwnerUserID: uuid.New(),
		Status:      domain.WalletStatusActive,
		Type:        domain.WalletTypeShared,
	}, nil)
	d.policyRepo.EXPECT().GetByType(ctx, domain.WalletTypeShared).Return(&domain.WalletTypePolicy{
		Type: domain.WalletTypeShared, MaxMembers: 10,
	}, nil)
	d.memberRepo.EXPECT().CountByStatus(ctx, walletID, []domain.MemberStatus{domain.MemberStatusActive}).Return(int64(2), nil)
	d.memberRepo.EXPECT().Upsert(ctx, tx, gomock.Any()).Return(nil)
	d.sessions.EXPECT().Delete(ctx, boundKey).Return(nil)
	d.sessions.EXPECT().ReleaseConflict(ctx, domain.InviteConflictKey(walletID, phone)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	res, err := d.svc.AcceptToken(ctx, token, callerID)
	require.NoError(t, err)
	assert.Equal(t, domain.MemberStatusActive, res.StatusAfter)
	assert.Equal(t, walletID, res.WalletID)
	assert.Equal(t, callerID, res.UserID)
}

func TestInviteService_AcceptToken_IdempotentWhenAlreadyMember(t *testing.T) {
	d := setupInviteService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	callerID := uuid.New()
	nonce := uuid.NewString()

	token, err := d.svc.signToken(walletID, nonce, &callerID, time.Now().UTC().Add(5*time.Minute))
	require.NoError(t, err)

	boundKey := domain.InviteSessionKey(walletID, &callerID, nonce)
	d.sessions.EXPECT().Get(ctx, boundKey).Return(nil, nil)
	d.memberRepo.EXPECT().Get(ctx, walletID, callerID).Return(&domain.WalletMember{
		WalletID: walletID,
		UserID:   callerID,
		Role:     domain.RoleMember,
		Status:   domain.MemberStatusActive,
	}, nil)

	res, err := d.svc.AcceptToken(ctx, token, callerID)
	require.NoError(t, err)
	assert.Equal(t, domain.MemberStatusActive, res.StatusAfter)
	assert.Equal(t, "already a member", res.Message)
}
