package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types carried in envelopes. Consumers must ignore unknown types.
const (
	EventWalletCreated        = "WalletCreated"
	EventWalletUpdated        = "WalletUpdated"
	EventWalletBalanceUpdated = "WalletBalanceUpdated"
	EventWalletMemberInvited  = "WalletMemberInvited"
	EventWalletInviteAccepted = "WalletInviteAccepted"
	EventWalletMembersCleared = "WalletMembersCleared"
)

// Topics, one stream per event type.
const (
	TopicWalletCreated  = "wallet.events.created"
	TopicWalletUpdated  = "wallet.events.updated"
	TopicBalanceUpdated = "wallet.events.balance-updated"
	TopicMemberInvited  = "wallet.events.member-invited"
	TopicInviteAccepted = "wallet.events.invite-accepted"
	TopicMembersCleared = "wallet.events.members-cleared"
)

// TopicFor maps an event type to its stream. Unknown types map to "".
func TopicFor(eventType string) string {
	switch eventType {
	case EventWalletCreated:
		return TopicWalletCreated
	case EventWalletUpdated:
		return TopicWalletUpdated
	case EventWalletBalanceUpdated:
		return TopicBalanceUpdated
	case EventWalletMemberInvited:
		return TopicMemberInvited
	case EventWalletInviteAccepted:
		return TopicInviteAccepted
	case EventWalletMembersCleared:
		return TopicMembersCleared
	}
	return ""
}

// Envelope wraps a domain event with routing and ordering metadata.
// AggregateID is the partition key: events for one wallet are delivered in
// relative order; cross-wallet ordering is not guaranteed.
type Envelope struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	Version     int             `json:"version"`
	OccurredAt  time.Time       `json:"occurred_at"`
	AggregateID string          `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload in a versioned envelope with a fresh event id.
func NewEnvelope(eventType string, version int, aggregateID string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		Version:     version,
		OccurredAt:  time.Now().UTC(),
		AggregateID: aggregateID,
		Payload:     raw,
	}, nil
}

// WalletCreatedPayload mirrors the wallet row at creation time.
type WalletCreatedPayload struct {
	WalletID         uuid.UUID       `json:"wallet_id"`
	OwnerUserID      uuid.UUID       `json:"owner_user_id"`
	Currency         string          `json:"currency"`
	Status           WalletStatus    `json:"status"`
	Type             WalletType      `json:"type"`
	Name             string          `json:"name"`
	BalanceSnapshot  decimal.Decimal `json:"balance_snapshot"`
	IsDefaultForUser bool            `json:"is_default_for_user"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// WalletUpdatedPayload carries the mutable summary fields after an update.
type WalletUpdatedPayload struct {
	WalletID        uuid.UUID       `json:"wallet_id"`
	OwnerUserID     uuid.UUID       `json:"owner_user_id"`
	Currency        string          `json:"currency"`
	Status          WalletStatus    `json:"status"`
	Type            WalletType      `json:"type"`
	Name            string          `json:"name"`
	BalanceSnapshot decimal.Decimal `json:"balance_snapshot"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// WalletBalanceUpdatedPayload records a successful balance mutation.
type WalletBalanceUpdatedPayload struct {
	WalletID        uuid.UUID       `json:"wallet_id"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Delta           decimal.Decimal `json:"delta"`
	ReferenceID     string          `json:"reference_id"`
	Reason          string          `json:"reason"`
	ActorUserID     uuid.UUID       `json:"actor_user_id"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// WalletMemberInvitedPayload announces a generated invite. The plaintext code
// never rides on the log; only the masked form does.
type WalletMemberInvitedPayload struct {
	WalletID      uuid.UUID  `json:"wallet_id"`
	InviterUserID uuid.UUID  `json:"inviter_user_id"`
	PhoneMasked   string     `json:"phone_masked"`
	Role          MemberRole `json:"role"`
	Link          string     `json:"link"`
	Nonce         string     `json:"nonce"`
	ExpiresAt     time.Time  `json:"expires_at"`
}

// WalletInviteAcceptedPayload records a membership activation.
type WalletInviteAcceptedPayload struct {
	WalletID   uuid.UUID  `json:"wallet_id"`
	UserID     uuid.UUID  `json:"user_id"`
	Role       MemberRole `json:"role"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// WalletMembersClearedPayload announces bulk removal of non-owner members.
type WalletMembersClearedPayload struct {
	WalletID   uuid.UUID `json:"wallet_id"`
	ClearedBy  uuid.UUID `json:"cleared_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
