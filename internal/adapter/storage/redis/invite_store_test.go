package redis

import (
	"context"
	"testing"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *domain.InviteSession {
	return &domain.InviteSession{
		WalletID:    uuid.New(),
		Phone:       "+6281234567890",
		Role:        domain.RoleMember,
		CodeHash:    "deadbeef",
		Nonce:       "nonce-1",
		MaxAttempts: domain.InviteMaxAttempts,
		Status:      domain.InviteStatusCreated,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestInviteStore_SaveAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewInviteStore(client)
	ctx := context.Background()

	session := newTestSession()
	key := domain.InviteSessionKey(session.WalletID, nil, session.Nonce)

	require.NoError(t, store.Save(ctx, key, session, 10*time.Minute))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.WalletID, got.WalletID)
	assert.Equal(t, session.CodeHash, got.CodeHash)
	assert.Equal(t, domain.InviteStatusCreated, got.Status)
}

func TestInviteStore_Get_Expired(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewInviteStore(client)
	ctx := context.Background()

	session := newTestSession()
	key := domain.InviteSessionKey(session.WalletID, nil, session.Nonce)

	require.NoError(t, store.Save(ctx, key, session, 1*time.Minute))
	s.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got, "expired session should read as absent")
}

func TestInviteStore_Get_CorruptPayload(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewInviteStore(client)
	ctx := context.Background()

	key := domain.InviteSessionKey(uuid.New(), nil, "nonce-1")
	require.NoError(t, client.Set(ctx, key, "{not json", time.Minute).Err())

	got, err := store.Get(ctx, key)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, apperror.KindCorruption, apperror.KindOf(err))
}

func TestInviteStore_Delete(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewInviteStore(client)
	ctx := context.Background()

	session := newTestSession()
	key := domain.InviteSessionKey(session.WalletID, nil, session.Nonce)
	require.NoError(t, store.Save(ctx, key, session, 10*time.Minute))

	require.NoError(t, store.Delete(ctx, key))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an already-gone key is fine.
	assert.NoError(t, store.Delete(ctx, key))
}

func TestInviteStore_AcquireConflict(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewInviteStore(client)
	ctx := context.Background()

	walletID := uuid.New()
	key := domain.InviteConflictKey(walletID, "+6281234567890")

	ok, err := store.AcquireConflict(ctx, key, "nonce-1", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "first claim should win")

	ok, err = store.AcquireConflict(ctx, key, "nonce-2", 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "live invite should block a second claim")

	require.NoError(t, store.ReleaseConflict(ctx, key))

	ok, err = store.AcquireConflict(ctx, key, "nonce-3", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released index should be claimable again")
}

func TestInviteStore_ConflictExpiresWithTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewInviteStore(client)
	ctx := context.Background()

	key := domain.InviteConflictKey(uuid.New(), "+6281234567890")

	ok, err := store.AcquireConflict(ctx, key, "nonce-1", 1*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Minute)

	ok, err = store.AcquireConflict(ctx, key, "nonce-2", 1*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired index should not block a fresh invite")
}
