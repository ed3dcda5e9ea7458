package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	memberRepo ports.MemberRepository
	readRepo   ports.ReadModelRepository
	idemSvc    ports.IdempotencyService
	events     ports.EventLog
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	memberRepo ports.MemberRepository,
	readRepo ports.ReadModelRepository,
	idemSvc ports.IdempotencyService,
	events ports.EventLog,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		memberRepo: memberRepo,
		readRepo:   readRepo,
		idemSvc:    idemSvc,
		events:     events,
		transactor: transactor,
		log:        log,
	}
}

// CreateWallet creates a wallet plus its OWNER membership in one transaction,
// deduplicated by the caller's idempotency key. A replay returns the stored
// wallet byte-for-byte.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest, idempotencyKey string) (*domain.Wallet, error) {
	if idempotencyKey == "" {
		return nil, apperror.Validation("idempotency key is required")
	}
	if !domain.ValidWalletType(req.Type) {
		return nil, apperror.Validation(fmt.Sprintf("unknown wallet type %q", req.Type))
	}
	if req.Name == "" {
		return nil, apperror.Validation("wallet name is required")
	}

	begin, err := s.idemSvc.Begin(ctx, domain.ScopeWalletCreate, idempotencyKey, req)
	if err != nil {
		return nil, err
	}
	if !begin.Fresh {
		return unmarshalWallet(begin.Response)
	}

	wallet, err := s.createWalletTx(ctx, req)
	if err != nil {
		s.idemSvc.Fail(ctx, domain.ScopeWalletCreate, idempotencyKey)
		return nil, err
	}

	body, err := json.Marshal(wallet)
	if err != nil {
		s.idemSvc.Fail(ctx, domain.ScopeWalletCreate, idempotencyKey)
		return nil, apperror.InternalError(fmt.Errorf("marshal wallet response: %w", err))
	}
	if err := s.idemSvc.Complete(ctx, domain.ScopeWalletCreate, idempotencyKey, 201, body); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("owner_user_id", wallet.OwnerUserID.String()).
		Str("type", string(wallet.Type)).
		Msg("wallet created")

	return wallet, nil
}

func (s *WalletServiceImpl) createWalletTx(ctx context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:               uuid.New(),
		OwnerUserID:      req.OwnerUserID,
		Currency:         "IDR",
		Status:           domain.WalletStatusActive,
		Type:             req.Type,
		Name:             req.Name,
		Balance:          decimal.Zero,
		IsDefaultForUser: req.SetAsDefault,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.Create(ctx, tx, wallet); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("create wallet: %w", err))
	}

	owner := &domain.WalletMember{
		WalletID:  wallet.ID,
		UserID:    req.OwnerUserID,
		Role:      domain.RoleOwner,
		Status:    domain.MemberStatusActive,
		JoinedAt:  &now,
		UpdatedAt: now,
	}
	if err := s.memberRepo.Upsert(ctx, tx, owner); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("create owner membership: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("commit tx: %w", err))
	}

	outbox := NewOutbox(s.events, s.log)
	env, err := domain.NewEnvelope(domain.EventWalletCreated, 1, wallet.ID.String(), domain.WalletCreatedPayload{
		WalletID:         wallet.ID,
		OwnerUserID:      wallet.OwnerUserID,
		Currency:         wallet.Currency,
		Status:           wallet.Status,
		Type:             wallet.Type,
		Name:             wallet.Name,
		BalanceSnapshot:  wallet.Balance,
		IsDefaultForUser: wallet.IsDefaultForUser,
		CreatedAt:        wallet.CreatedAt,
		UpdatedAt:        wallet.UpdatedAt,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", wallet.ID.String()).Msg("wallet created event build failed")
		return wallet, nil
	}
	outbox.Stage(env)
	outbox.Flush(ctx)

	return wallet, nil
}

// UpdateWallet mutates wallet name and/or status. The actor must be the owner
// or an ADMIN member. The row is locked so the event mirrors exactly what was
// committed.
func (s *WalletServiceImpl) UpdateWallet(ctx context.Context, req ports.UpdateWalletRequest) (*domain.Wallet, error) {
	if req.Name == nil && req.Status == nil {
		return nil, apperror.Validation("nothing to update")
	}
	if req.Status != nil && !domain.ValidWalletStatus(*req.Status) {
		return nil, apperror.Validation(fmt.Sprintf("unknown wallet status %q", *req.Status))
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, tx, req.WalletID)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	if wallet.Status == domain.WalletStatusClosed {
		return nil, apperror.ErrWalletNotActive()
	}

	if err := s.requireAdmin(ctx, wallet, req.ActorUserID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		wallet.Name = *req.Name
	}
	if req.Status != nil {
		wallet.Status = *req.Status
	}
	wallet.UpdatedAt = time.Now().UTC()

	if err := s.walletRepo.UpdateInfo(ctx, tx, wallet.ID, wallet.Name, wallet.Status); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("update wallet: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("commit tx: %w", err))
	}

	outbox := NewOutbox(s.events, s.log)
	env, err := domain.NewEnvelope(domain.EventWalletUpdated, 1, wallet.ID.String(), domain.WalletUpdatedPayload{
		WalletID:        wallet.ID,
		OwnerUserID:     wallet.OwnerUserID,
		Currency:        wallet.Currency,
		Status:          wallet.Status,
		Type:            wallet.Type,
		Name:            wallet.Name,
		BalanceSnapshot: wallet.Balance,
		UpdatedAt:       wallet.UpdatedAt,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", wallet.ID.String()).Msg("wallet updated event build failed")
		return wallet, nil
	}
	outbox.Stage(env)
	outbox.Flush(ctx)

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("status", string(wallet.Status)).
		Msg("wallet updated")

	return wallet, nil
}

// ClearMembers removes every non-owner membership in one locked transaction
// and reports how many rows flipped to REMOVED. Only the owner may clear.
func (s *WalletServiceImpl) ClearMembers(ctx context.Context, walletID, actorUserID uuid.UUID) (int64, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.ErrDatabase(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, tx, walletID)
	if err != nil {
		return 0, apperror.ErrDatabase(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return 0, apperror.ErrWalletNotFound()
	}
	if wallet.OwnerUserID != actorUserID {
		return 0, apperror.ErrForbidden("only the wallet owner can clear members")
	}

	cleared, err := s.memberRepo.ClearNonOwners(ctx, tx, walletID)
	if err != nil {
		return 0, apperror.ErrDatabase(fmt.Errorf("clear members: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.ErrDatabase(fmt.Errorf("commit tx: %w", err))
	}

	outbox := NewOutbox(s.events, s.log)
	env, err := domain.NewEnvelope(domain.EventWalletMembersCleared, 1, walletID.String(), domain.WalletMembersClearedPayload{
		WalletID:   walletID,
		ClearedBy:  actorUserID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("members cleared event build failed")
		return cleared, nil
	}
	outbox.Stage(env)
	outbox.Flush(ctx)

	s.log.Info().
		Str("wallet_id", walletID.String()).
		Int64("cleared", cleared).
		Msg("wallet members cleared")

	return cleared, nil
}

// GetDefaultWallet resolves the user's default receiving wallet from the read
// model.
func (s *WalletServiceImpl) GetDefaultWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletSummary, error) {
	summary, err := s.readRepo.GetDefaultWallet(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("get default wallet: %w", err))
	}
	if summary == nil {
		return nil, apperror.ErrDefaultWalletNotSet()
	}
	return summary, nil
}

// requireAdmin passes when the actor owns the wallet or holds an active ADMIN
// membership.
func (s *WalletServiceImpl) requireAdmin(ctx context.Context, wallet *domain.Wallet, actorUserID uuid.UUID) error {
	if wallet.OwnerUserID == actorUserID {
		return nil
	}
	member, err := s.memberRepo.ViewRoleAndStatus(ctx, wallet.ID, actorUserID)
	if err != nil {
		return apperror.ErrDatabase(fmt.Errorf("read member view: %w", err))
	}
	if member == nil || member.Status != domain.MemberStatusActive || member.Role != domain.RoleAdmin {
		return apperror.ErrForbidden("only the owner or an admin can modify this wallet")
	}
	return nil
}

func unmarshalWallet(data []byte) (*domain.Wallet, error) {
	wallet := &domain.Wallet{}
	if err := json.Unmarshal(data, wallet); err != nil {
		return nil, apperror.ErrCorruptPayload(fmt.Errorf("unmarshal stored wallet: %w", err))
	}
	return wallet, nil
}
