package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/config"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const inviteTokenSubject = "wallet-invite"

// Inspection and verification statuses.
const (
	InviteStateValid    = "VALID"
	InviteStateVerified = "VERIFIED"
	InviteStateExpired  = "EXPIRED"
	InviteStateBadCode  = "INVALID_CODE"
)

// inviteClaims is the JWT payload of an invite token. uid is present only on
// bound tokens issued after code verification.
type inviteClaims struct {
	WalletID string `json:"wid"`
	Nonce    string `json:"n"`
	UserID   string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// InviteServiceImpl implements ports.InviteService. The signed token carries
// routing only; all mutable state lives in the session store under TTL, so an
// invite dies by expiry even if nobody touches it again.
type InviteServiceImpl struct {
	walletRepo ports.WalletRepository
	memberRepo ports.MemberRepository
	policyRepo ports.PolicyRepository
	sessions   ports.InviteSessionStore
	idemSvc    ports.IdempotencyService
	events     ports.EventLog
	transactor ports.DBTransactor
	cfg        config.InviteConfig
	log        zerolog.Logger
}

// NewInviteService creates a new InviteServiceImpl.
func NewInviteService(
	walletRepo ports.WalletRepository,
	memberRepo ports.MemberRepository,
	policyRepo ports.PolicyRepository,
	sessions ports.InviteSessionStore,
	idemSvc ports.IdempotencyService,
	events ports.EventLog,
	transactor ports.DBTransactor,
	cfg config.InviteConfig,
	log zerolog.Logger,
) *InviteServiceImpl {
	return &InviteServiceImpl{
		walletRepo: walletRepo,
		memberRepo: memberRepo,
		policyRepo: policyRepo,
		sessions:   sessions,
		idemSvc:    idemSvc,
		events:     events,
		transactor: transactor,
		cfg:        cfg,
		log:        log,
	}
}

// Generate creates an invite for a phone number: a session under TTL, a
// one-time code for out-of-band delivery and a signed link token. One live
// invite per (wallet, phone) at a time.
func (s *InviteServiceImpl) Generate(ctx context.Context, walletID, inviterUserID uuid.UUID, phone string, role domain.MemberRole, idempotencyKey string) (*ports.GeneratedInvite, error) {
	if idempotencyKey == "" {
		return nil, apperror.Validation("idempotency key is required")
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if !domain.ValidMemberRole(role) || role == domain.RoleOwner {
		return nil, apperror.Validation(fmt.Sprintf("role %q cannot be granted by invite", role))
	}

	idemBody := map[string]string{
		"wallet_id": walletID.String(),
		"inviter":   inviterUserID.String(),
		"phone":     phone,
		"role":      string(role),
	}
	begin, err := s.idemSvc.Begin(ctx, domain.ScopeMemberInvite, idempotencyKey, idemBody)
	if err != nil {
		return nil, err
	}
	if !begin.Fresh {
		invite := &ports.GeneratedInvite{}
		if err := json.Unmarshal(begin.Response, invite); err != nil {
			return nil, apperror.ErrCorruptPayload(fmt.Errorf("unmarshal stored invite: %w", err))
		}
		return invite, nil
	}

	invite, err := s.generate(ctx, walletID, inviterUserID, phone, role)
	if err != nil {
		s.idemSvc.Fail(ctx, domain.ScopeMemberInvite, idempotencyKey)
		return nil, err
	}

	body, err := json.Marshal(invite)
	if err != nil {
		s.idemSvc.Fail(ctx, domain.ScopeMemberInvite, idempotencyKey)
		return nil, apperror.InternalError(fmt.Errorf("marshal invite response: %w", err))
	}
	if err := s.idemSvc.Complete(ctx, domain.ScopeMemberInvite, idempotencyKey, 201, body); err != nil {
		return nil, err
	}
	return invite, nil
}

func (s *InviteServiceImpl) generate(ctx context.Context, walletID, inviterUserID uuid.UUID, phone string, role domain.MemberRole) (*ports.GeneratedInvite, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	if wallet.Status != domain.WalletStatusActive {
		return nil, apperror.ErrWalletNotActive()
	}
	if wallet.Type != domain.WalletTypeShared {
		return nil, apperror.ErrForbidden("only shared wallets accept members")
	}

	if err := s.requireInviter(ctx, wallet, inviterUserID); err != nil {
		return nil, err
	}

	policy, err := s.policyRepo.GetByType(ctx, wallet.Type)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("get wallet type policy: %w", err))
	}
	if policy != nil && policy.MaxMembers > 0 {
		count, err := s.memberRepo.CountByStatus(ctx, walletID,
			[]domain.MemberStatus{domain.MemberStatusActive, domain.MemberStatusInvited})
		if err != nil {
			return nil, apperror.ErrDatabase(fmt.Errorf("count members: %w", err))
		}
		if count >= int64(policy.MaxMembers) {
			return nil, apperror.ErrMaxMembersReached()
		}
	}

	nonce := uuid.NewString()
	conflictKey := domain.InviteConflictKey(walletID, phone)
	acquired, err := s.sessions.AcquireConflict(ctx, conflictKey, nonce, s.cfg.TTL)
	if err != nil {
		return nil, apperror.ErrSessionStore(err)
	}
	if !acquired {
		return nil, apperror.ErrAlreadyInvited()
	}

	code, err := generateInviteCode()
	if err != nil {
		_ = s.sessions.ReleaseConflict(ctx, conflictKey)
		return nil, apperror.InternalError(fmt.Errorf("generate invite code: %w", err))
	}

	now := time.Now().UTC()
	session := &domain.InviteSession{
		WalletID:    walletID,
		Phone:       phone,
		Role:        role,
		CodeHash:    domain.HashInviteCode(code, s.cfg.Secret),
		Nonce:       nonce,
		MaxAttempts: domain.InviteMaxAttempts,
		Status:      domain.InviteStatusCreated,
		CreatedAt:   now,
	}
	sessionKey := domain.InviteSessionKey(walletID, nil, nonce)
	if err := s.sessions.Save(ctx, sessionKey, session, s.cfg.TTL); err != nil {
		_ = s.sessions.ReleaseConflict(ctx, conflictKey)
		return nil, apperror.ErrSessionStore(err)
	}

	expiresAt := now.Add(s.cfg.TTL)
	token, err := s.signToken(walletID, nonce, nil, expiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, sessionKey)
		_ = s.sessions.ReleaseConflict(ctx, conflictKey)
		return nil, apperror.InternalError(fmt.Errorf("sign invite token: %w", err))
	}

	link := fmt.Sprintf("%s?token=%s", s.cfg.BaseURL, token)
	masked := domain.MaskPhone(phone)

	env, err := domain.NewEnvelope(domain.EventWalletMemberInvited, 1, walletID.String(), domain.WalletMemberInvitedPayload{
		WalletID:      walletID,
		InviterUserID: inviterUserID,
		PhoneMasked:   masked,
		Role:          role,
		Link:          link,
		Nonce:         nonce,
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("member invited event build failed")
	} else if err := s.events.Publish(ctx, env); err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("member invited event publish failed")
	}

	s.log.Info().
		Str("wallet_id", walletID.String()).
		Str("phone", masked).
		Str("role", string(role)).
		Msg("invite generated")

	return &ports.GeneratedInvite{PhoneMasked: masked, Link: link, Code: code}, nil
}

// Inspect reports what a token points at without consuming a code attempt.
func (s *InviteServiceImpl) Inspect(ctx context.Context, token string) (*ports.InviteInspection, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return &ports.InviteInspection{Status: InviteStateExpired}, nil
		}
		return nil, apperror.ErrInvalidToken()
	}

	session, walletID, err := s.loadSession(ctx, claims)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &ports.InviteInspection{Status: InviteStateExpired, WalletID: walletID}, nil
	}

	status := InviteStateValid
	if session.Status == domain.InviteStatusVerified {
		status = InviteStateVerified
	}
	return &ports.InviteInspection{
		Status:      status,
		WalletID:    walletID,
		Role:        session.Role,
		PhoneMasked: domain.MaskPhone(session.Phone),
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// VerifyCode checks the one-time code. On success the session is re-keyed to
// the caller's account and a bound token is issued; the anonymous token stops
// resolving. Wrong codes burn attempts, and the fifth wrong code burns the
// session.
func (s *InviteServiceImpl) VerifyCode(ctx context.Context, token, code string, callerUserID uuid.UUID) (*ports.VerifyCodeResult, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return &ports.VerifyCodeResult{Status: InviteStateExpired}, nil
		}
		return nil, apperror.ErrInvalidToken()
	}

	session, walletID, err := s.loadSession(ctx, claims)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &ports.VerifyCodeResult{Status: InviteStateExpired, WalletID: walletID}, nil
	}

	expiresAt := claims.ExpiresAt.Time
	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		return &ports.VerifyCodeResult{Status: InviteStateExpired, WalletID: walletID}, nil
	}

	sessionKey := domain.InviteSessionKey(walletID, claims.userUUID(), claims.Nonce)

	if !session.CodeMatches(code, s.cfg.Secret) {
		session.Attempts++
		if session.AttemptsExhausted() {
			_ = s.sessions.Delete(ctx, sessionKey)
			_ = s.sessions.ReleaseConflict(ctx, domain.InviteConflictKey(walletID, session.Phone))
			s.log.Warn().
				Str("wallet_id", walletID.String()).
				Msg("invite burned after too many wrong codes")
			return &ports.VerifyCodeResult{Status: InviteStateExpired, WalletID: walletID}, nil
		}
		if err := s.sessions.Save(ctx, sessionKey, session, remaining); err != nil {
			return nil, apperror.ErrSessionStore(err)
		}
		return &ports.VerifyCodeResult{
			Status:    InviteStateBadCode,
			WalletID:  walletID,
			ExpiresAt: expiresAt,
		}, nil
	}

	// Re-key the session to the verifying account.
	session.Status = domain.InviteStatusVerified
	session.UserID = &callerUserID
	boundKey := domain.InviteSessionKey(walletID, &callerUserID, claims.Nonce)
	if err := s.sessions.Save(ctx, boundKey, session, remaining); err != nil {
		return nil, apperror.ErrSessionStore(err)
	}
	if boundKey != sessionKey {
		_ = s.sessions.Delete(ctx, sessionKey)
	}

	boundToken, err := s.signToken(walletID, claims.Nonce, &callerUserID, expiresAt)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sign bound token: %w", err))
	}

	s.log.Info().
		Str("wallet_id", walletID.String()).
		Str("user_id", callerUserID.String()).
		Msg("invite code verified")

	return &ports.VerifyCodeResult{
		Status:      InviteStateVerified,
		WalletID:    walletID,
		PhoneMasked: domain.MaskPhone(session.Phone),
		Verified:    true,
		BoundToken:  boundToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// AcceptToken activates the membership behind a verified, bound token. The
// session is single-use; accepting again after success is answered
// idempotently from the membership row.
func (s *InviteServiceImpl) AcceptToken(ctx context.Context, token string, callerUserID uuid.UUID) (*ports.MemberActionResult, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, apperror.ErrInvalidToken()
	}
	walletID, err := uuid.Parse(claims.WalletID)
	if err != nil {
		return nil, apperror.ErrInvalidToken()
	}

	boundUser := claims.userUUID()
	if boundUser == nil {
		return nil, apperror.ErrInviteNotVerified()
	}
	if *boundUser != callerUserID {
		return nil, apperror.ErrForbidden("token is bound to a different account")
	}

	sessionKey := domain.InviteSessionKey(walletID, boundUser, claims.Nonce)
	session, err := s.sessions.Get(ctx, sessionKey)
	if err != nil {
		return nil, s.sessionError(err)
	}
	if session == nil {
		// Session gone: either expired or already consumed. An existing ACTIVE
		// membership makes the accept idempotent.
		member, err := s.memberRepo.Get(ctx, walletID, callerUserID)
		if err != nil {
			return nil, apperror.ErrDatabase(fmt.Errorf("get membership: %w", err))
		}
		if member != nil && member.Status == domain.MemberStatusActive {
			return &ports.MemberActionResult{
				WalletID:    walletID,
				UserID:      callerUserID,
				StatusAfter: member.Status,
				OccurredAt:  member.UpdatedAt,
				Message:     "already a member",
			}, nil
		}
		return nil, apperror.ErrInviteNotFound()
	}
	if session.Status != domain.InviteStatusVerified {
		return nil, apperror.ErrInviteNotVerified()
	}

	result, err := s.activateMembership(ctx, walletID, callerUserID, session.Role)
	if err != nil {
		return nil, err
	}

	_ = s.sessions.Delete(ctx, sessionKey)
	_ = s.sessions.ReleaseConflict(ctx, domain.InviteConflictKey(walletID, session.Phone))

	env, err := domain.NewEnvelope(domain.EventWalletInviteAccepted, 1, walletID.String(), domain.WalletInviteAcceptedPayload{
		WalletID:   walletID,
		UserID:     callerUserID,
		Role:       session.Role,
		OccurredAt: result.OccurredAt,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("invite accepted event build failed")
	} else if err := s.events.Publish(ctx, env); err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("invite accepted event publish failed")
	}

	s.log.Info().
		Str("wallet_id", walletID.String()).
		Str("user_id", callerUserID.String()).
		Str("role", string(session.Role)).
		Msg("invite accepted")

	return result, nil
}

func (s *InviteServiceImpl) activateMembership(ctx context.Context, walletID, userID uuid.UUID, role domain.MemberRole) (*ports.MemberActionResult, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, tx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	if wallet.Status != domain.WalletStatusActive {
		return nil, apperror.ErrWalletNotActive()
	}

	policy, err := s.policyRepo.GetByType(ctx, wallet.Type)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("get wallet type policy: %w", err))
	}
	if policy != nil && policy.MaxMembers > 0 {
		count, err := s.memberRepo.CountByStatus(ctx, walletID, []domain.MemberStatus{domain.MemberStatusActive})
		if err != nil {
			return nil, apperror.ErrDatabase(fmt.Errorf("count members: %w", err))
		}
		if count >= int64(policy.MaxMembers) {
			return nil, apperror.ErrMaxMembersReached()
		}
	}

	now := time.Now().UTC()
	member := &domain.WalletMember{
		WalletID:  walletID,
		UserID:    userID,
		Role:      role,
		Status:    domain.MemberStatusActive,
		JoinedAt:  &now,
		UpdatedAt: now,
	}
	if err := s.memberRepo.Upsert(ctx, tx, member); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("activate membership: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("commit tx: %w", err))
	}

	return &ports.MemberActionResult{
		WalletID:    walletID,
		UserID:      userID,
		StatusAfter: domain.MemberStatusActive,
		OccurredAt:  now,
		Message:     "membership activated",
	}, nil
}

// requireInviter passes when the inviter owns the wallet or holds an active
// ADMIN membership.
func (s *InviteServiceImpl) requireInviter(ctx context.Context, wallet *domain.Wallet, inviterUserID uuid.UUID) error {
	if wallet.OwnerUserID == inviterUserID {
		return nil
	}
	member, err := s.memberRepo.ViewRoleAndStatus(ctx, wallet.ID, inviterUserID)
	if err != nil {
		return apperror.ErrDatabase(fmt.Errorf("read member view: %w", err))
	}
	if member == nil || member.Status != domain.MemberStatusActive || member.Role != domain.RoleAdmin {
		return apperror.ErrForbidden("only the owner or an admin can invite members")
	}
	return nil
}

// loadSession resolves the session key from claims and fetches it.
func (s *InviteServiceImpl) loadSession(ctx context.Context, claims *inviteClaims) (*domain.InviteSession, uuid.UUID, error) {
	walletID, err := uuid.Parse(claims.WalletID)
	if err != nil {
		return nil, uuid.Nil, apperror.ErrInvalidToken()
	}
	key := domain.InviteSessionKey(walletID, claims.userUUID(), claims.Nonce)
	session, err := s.sessions.Get(ctx, key)
	if err != nil {
		return nil, uuid.Nil, s.sessionError(err)
	}
	return session, walletID, nil
}

// sessionError hides corrupt payloads behind NotFound: a session that cannot
// be decoded must not be acceptable.
func (s *InviteServiceImpl) sessionError(err error) error {
	if apperror.KindOf(err) == apperror.KindCorruption {
		s.log.Error().Err(err).Msg("corrupt invite session payload")
		return apperror.ErrInviteNotFound()
	}
	return apperror.ErrSessionStore(err)
}

func (s *InviteServiceImpl) signToken(walletID uuid.UUID, nonce string, userID *uuid.UUID, expiresAt time.Time) (string, error) {
	claims := inviteClaims{
		WalletID: walletID.String(),
		Nonce:    nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   inviteTokenSubject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	if userID != nil {
		claims.UserID = userID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
}

func (s *InviteServiceImpl) parseToken(token string) (*inviteClaims, error) {
	claims := &inviteClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject != inviteTokenSubject || claims.Nonce == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// userUUID returns the bound user id, nil for anonymous tokens.
func (c *inviteClaims) userUUID() *uuid.UUID {
	if c.UserID == "" {
		return nil
	}
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil
	}
	return &id
}

// generateInviteCode draws a uniform 6-digit one-time code.
func generateInviteCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// validatePhone accepts E.164 numbers only.
func validatePhone(phone string) error {
	if !strings.HasPrefix(phone, "+") || len(phone) < 9 || len(phone) > 16 {
		return apperror.Validation("phone must be in E.164 format")
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return apperror.Validation("phone must be in E.164 format")
		}
	}
	return nil
}
