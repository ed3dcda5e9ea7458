package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// IdempotencyTTL is how long a record guards its (scope, key) pair.
const IdempotencyTTL = 72 * time.Hour

// IdemStatus is the state of an idempotency record. COMPLETED is terminal;
// FAILED permits re-entry to PROCESSING.
type IdemStatus string

const (
	IdemProcessing IdemStatus = "PROCESSING"
	IdemCompleted  IdemStatus = "COMPLETED"
	IdemFailed     IdemStatus = "FAILED"
)

// IdempotencyRecord deduplicates mutating commands keyed by (scope, key).
// The storage layer enforces uniqueness on that pair; the record itself never
// moves money.
type IdempotencyRecord struct {
	Scope          string     `json:"scope"`
	Key            string     `json:"key"`
	RequestHash    string     `json:"request_hash"`
	Status         IdemStatus `json:"status"`
	ResponseStatus int        `json:"response_status,omitempty"`
	ResponseBody   []byte     `json:"response_body,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
}

// Idempotency scopes, one per mutating command family.
const (
	ScopeWalletCreate = "wallet:create"
	ScopeMemberInvite = "member:invite"
)

// RequestHash canonicalizes a request body and returns its SHA-256 hex digest.
// json.Marshal emits struct fields in declaration order and sorts map keys, so
// equal values always hash equal.
func RequestHash(body any) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("canonicalize request body: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
