package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// InviteStore implements ports.InviteSessionStore using Redis. Sessions are
// JSON blobs under TTL; the conflict index is a SETNX key holding the nonce
// of the live invite.
type InviteStore struct {
	client *goredis.Client
}

// NewInviteStore creates a Redis-backed invite session store.
func NewInviteStore(client *goredis.Client) *InviteStore {
	return &InviteStore{client: client}
}

// Save writes a session under key with the given TTL.
func (s *InviteStore) Save(ctx context.Context, key string, session *domain.InviteSession, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal invite session: %w", err)
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis invite save: %w", err)
	}
	return nil
}

// Get retrieves a session by key. Returns nil, nil when absent or expired.
func (s *InviteStore) Get(ctx context.Context, key string) (*domain.InviteSession, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis invite get: %w", err)
	}

	session := &domain.InviteSession{}
	if err := json.Unmarshal(raw, session); err != nil {
		// An undecodable session must read as corrupt, not transient, so the
		// caller fails the invite closed instead of telling the user to retry.
		return nil, apperror.ErrCorruptPayload(fmt.Errorf("unmarshal invite session: %w", err))
	}
	return session, nil
}

// Delete removes one or more session keys. Missing keys are not an error.
func (s *InviteStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis invite delete: %w", err)
	}
	return nil
}

// AcquireConflict claims the per-(wallet, phone) index with SETNX. Returns
// false when a live invite already holds it.
func (s *InviteStore) AcquireConflict(ctx context.Context, key, nonce string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, nonce, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis invite conflict acquire: %w", err)
	}
	return ok, nil
}

// ReleaseConflict frees the conflict index key.
func (s *InviteStore) ReleaseConflict(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis invite conflict release: %w", err)
	}
	return nil
}
