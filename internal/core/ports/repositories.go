package ports

import (
	"context"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletView is the status+balance projection used by validation reads.
type WalletView struct {
	Status  domain.WalletStatus
	Balance decimal.Decimal
}

// MemberView is the role+status projection used by policy checks.
type MemberView struct {
	Role   domain.MemberRole
	Status domain.MemberStatus
}

// WalletRepository persists authoritative wallet rows.
// Methods accepting pgx.Tx run inside a caller-owned transaction; AdjustBalance
// is the single-statement conditional mutation and needs no lock.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	View(ctx context.Context, id uuid.UUID) (*WalletView, error)
	// AdjustBalance applies delta only if the wallet is ACTIVE and the result
	// stays >= 0, in one statement. Returns (nil, nil) when the condition
	// rejected the mutation.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*decimal.Decimal, error)
	UpdateInfo(ctx context.Context, tx pgx.Tx, id uuid.UUID, name string, status domain.WalletStatus) error
}

// MemberRepository persists wallet memberships.
type MemberRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, m *domain.WalletMember) error
	Get(ctx context.Context, walletID, userID uuid.UUID) (*domain.WalletMember, error)
	ViewRoleAndStatus(ctx context.Context, walletID, userID uuid.UUID) (*MemberView, error)
	PerTxLimit(ctx context.Context, walletID, userID uuid.UUID) (decimal.Decimal, error)
	CountByStatus(ctx context.Context, walletID uuid.UUID, statuses []domain.MemberStatus) (int64, error)
	ClearNonOwners(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (int64, error)
}

// PolicyRepository reads immutable wallet-type reference data.
type PolicyRepository interface {
	GetByType(ctx context.Context, t domain.WalletType) (*domain.WalletTypePolicy, error)
	// GetForWallet resolves a wallet's policy and currency in one query.
	GetForWallet(ctx context.Context, walletID uuid.UUID) (*domain.WalletTypePolicy, string, error)
}

// IdempotencyRepository persists (scope, key) command records. The storage
// uniqueness constraint on the pair is the concurrency guard.
type IdempotencyRepository interface {
	// Insert adds a PROCESSING record; returns false when the pair already exists.
	Insert(ctx context.Context, rec *domain.IdempotencyRecord) (bool, error)
	Get(ctx context.Context, scope, key string) (*domain.IdempotencyRecord, error)
	// ResetFailed flips FAILED back to PROCESSING; returns false when the
	// record is no longer FAILED (a concurrent retry won).
	ResetFailed(ctx context.Context, scope, key string) (bool, error)
	Complete(ctx context.Context, scope, key string, responseStatus int, responseBody []byte) error
	Fail(ctx context.Context, scope, key string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// ReadModelRepository maintains the denormalized query-side state. The
// projector is its only writer; every mutation is an idempotent upsert, so
// none of them need to join a caller's transaction.
type ReadModelRepository interface {
	UpsertWalletSummary(ctx context.Context, s *domain.WalletSummary) error
	GetWalletSummary(ctx context.Context, walletID uuid.UUID) (*domain.WalletSummary, error)
	UpdateBalanceSnapshot(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal) error
	UpsertMemberSummary(ctx context.Context, m *domain.MemberSummary) error
	UpsertMembershipIndex(ctx context.Context, e *domain.MembershipIndexEntry) error
	RecountActiveMembers(ctx context.Context, walletID uuid.UUID) error
	// SetDefaultWallet atomically unsets the previous default, sets the new
	// one, and upserts the preference row in one transaction.
	SetDefaultWallet(ctx context.Context, userID, walletID uuid.UUID) error
	GetDefaultWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletSummary, error)
	RemoveWalletMembers(ctx context.Context, walletID uuid.UUID) error
}

// InviteSessionStore holds short-lived invite sessions in a fast-expiring
// key-value namespace.
type InviteSessionStore interface {
	Save(ctx context.Context, key string, s *domain.InviteSession, ttl time.Duration) error
	// Get returns (nil, nil) when the key is absent or expired.
	Get(ctx context.Context, key string) (*domain.InviteSession, error)
	Delete(ctx context.Context, keys ...string) error
	// AcquireConflict claims the per-(wallet,phone) index; false when a live
	// invite already holds it.
	AcquireConflict(ctx context.Context, key, nonce string, ttl time.Duration) (bool, error)
	ReleaseConflict(ctx context.Context, key string) error
}

// EventLog is the durable, partitioned event log (publisher side).
type EventLog interface {
	Publish(ctx context.Context, env domain.Envelope) error
}

// LoggedEvent is an envelope read from the log together with its position.
// DecodeErr is set when the stored entry could not be decoded into an
// envelope; the position fields still let the consumer ack and skip it.
type LoggedEvent struct {
	Topic     string
	ID        string
	Envelope  domain.Envelope
	DecodeErr error
}

// EventStream is the consumer side of the log: group-based reads with a
// consumer-owned committed position advanced via Ack.
type EventStream interface {
	EnsureGroup(ctx context.Context, group string, topics []string) error
	Read(ctx context.Context, group, consumer string, topics []string, count int64, block time.Duration) ([]LoggedEvent, error)
	Ack(ctx context.Context, topic, group, id string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
