package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Invite session states. CREATED sessions are keyed anonymously; VERIFIED
// sessions are re-keyed to the verifying user. BOUND means the invite was
// issued to a known user id up front.
const (
	InviteStatusCreated  = "CREATED"
	InviteStatusBound    = "BOUND"
	InviteStatusVerified = "VERIFIED"
)

// InviteMaxAttempts is the number of wrong codes before a session is burned.
const InviteMaxAttempts = 5

// InviteSession is the short-lived state behind a signed invite token. It is
// single-use: deleted on accept, expired via TTL otherwise.
type InviteSession struct {
	WalletID    uuid.UUID  `json:"wallet_id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Phone       string     `json:"phone"`
	Role        MemberRole `json:"role"`
	CodeHash    string     `json:"code_hash"`
	Nonce       string     `json:"nonce"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// InviteSessionKey builds the storage key `invite:{walletId}:{userIdOrDash}:{nonce}`.
func InviteSessionKey(walletID uuid.UUID, userID *uuid.UUID, nonce string) string {
	uidPart := "-"
	if userID != nil {
		uidPart = userID.String()
	}
	return fmt.Sprintf("invite:%s:%s:%s", walletID, uidPart, nonce)
}

// InviteConflictKey indexes live invites per (wallet, phone) so the same
// recipient cannot hold two sessions at once.
func InviteConflictKey(walletID uuid.UUID, phone string) string {
	return fmt.Sprintf("invite:index:%s:%s", walletID, phone)
}

// HashInviteCode computes the HMAC-SHA256 hex digest of a one-time code.
func HashInviteCode(code, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}

// CodeMatches compares a plaintext code against the stored digest in constant time.
func (s *InviteSession) CodeMatches(code, secret string) bool {
	return hmac.Equal([]byte(HashInviteCode(code, secret)), []byte(s.CodeHash))
}

// AttemptsExhausted reports whether the session has burned all code attempts.
func (s *InviteSession) AttemptsExhausted() bool {
	return s.Attempts >= s.MaxAttempts
}

// MaskPhone hides the middle digits of an E.164 number for display.
func MaskPhone(e164 string) string {
	if len(e164) < 8 {
		return e164
	}
	return e164[:6] + "****" + e164[len(e164)-2:]
}
