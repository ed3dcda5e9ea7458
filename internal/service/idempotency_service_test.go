package service

import (
	"context"
	"testing"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports/mocks"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyService_Begin_Fresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil)

	res, err := svc.Begin(ctx, domain.ScopeWalletCreate, "key-1", map[string]string{"name": "main"})
	require.NoError(t, err)
	assert.True(t, res.Fresh)
}

func TestIdempotencyService_Begin_ReplayCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	body := map[string]string{"name": "main"}
	hash, err := domain.RequestHash(body)
	require.NoError(t, err)

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)
	repo.EXPECT().Get(ctx, domain.ScopeWalletCreate, "key-1").Return(&domain.IdempotencyRecord{
		Scope:          domain.ScopeWalletCreate,
		Key:            "key-1",
		RequestHash:    hash,
		Status:         domain.IdemCompleted,
		ResponseStatus: 201,
		ResponseBody:   []byte(`{"id":"w1"}`),
	}, nil)

	res, err := svc.Begin(ctx, domain.ScopeWalletCreate, "key-1", body)
	require.NoError(t, err)
	assert.False(t, res.Fresh)
	assert.Equal(t, 201, res.ResponseStatus)
	assert.Equal(t, []byte(`{"id":"w1"}`), res.Response)
}

func TestIdempotencyService_Begin_HashMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)
	repo.EXPECT().Get(ctx, domain.ScopeWalletCreate, "key-1").Return(&domain.IdempotencyRecord{
		RequestHash: "a-different-hash",
		Status:      domain.IdemCompleted,
	}, nil)

	_, err := svc.Begin(ctx, domain.ScopeWalletCreate, "key-1", map[string]string{"name": "other"})
	require.Error(t, err)
	assert.Equal(t, "IDEMPOTENCY_CONFLICT", apperror.CodeOf(err))
}

func TestIdempotencyService_Begin_InProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	body := map[string]string{"name": "main"}
	hash, err := domain.RequestHash(body)
	require.NoError(t, err)

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)
	repo.EXPECT().Get(ctx, domain.ScopeWalletCreate, "key-1").Return(&domain.IdempotencyRecord{
		RequestHash: hash,
		Status:      domain.IdemProcessing,
	}, nil)

	_, err = svc.Begin(ctx, domain.ScopeWalletCreate, "key-1", body)
	require.Error(t, err)
	assert.Equal(t, "IDEMPOTENCY_IN_PROGRESS", apperror.CodeOf(err))
}

func TestIdempotencyService_Begin_RetryAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	body := map[string]string{"name": "main"}
	hash, err := domain.RequestHash(body)
	require.NoError(t, err)

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)
	repo.EXPECT().Get(ctx, domain.ScopeWalletCreate, "key-1").Return(&domain.IdempotencyRecord{
		RequestHash: hash,
		Status:      domain.IdemFailed,
	}, nil)
	repo.EXPECT().ResetFailed(ctx, domain.ScopeWalletCreate, "key-1").Return(true, nil)

	res, err := svc.Begin(ctx, domain.ScopeWalletCreate, "key-1", body)
	require.NoError(t, err)
	assert.True(t, res.Fresh)
}

func TestIdempotencyService_Begin_RetryLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	body := map[string]string{"name": "main"}
	hash, err := domain.RequestHash(body)
	require.NoError(t, err)

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)
	repo.EXPECT().Get(ctx, domain.ScopeWalletCreate, "key-1").Return(&domain.IdempotencyRecord{
		RequestHash: hash,
		Status:      domain.IdemFailed,
	}, nil)
	repo.EXPECT().ResetFailed(ctx, domain.ScopeWalletCreate, "key-1").Return(false, nil)

	_, err = svc.Begin(ctx, domain.ScopeWalletCreate, "key-1", body)
	require.Error(t, err)
	assert.Equal(t, "IDEMPOTENCY_IN_PROGRESS", apperror.CodeOf(err))
}

func TestIdempotencyService_Fail_BestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().Fail(ctx, domain.ScopeWalletCreate, "key-1").Return(assert.AnError)

	// Must not panic or propagate.
	svc.Fail(ctx, domain.ScopeWalletCreate, "key-1")
}

func TestIdempotencyService_RunCleanup_PurgesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIdempotencyRepository(ctrl)
	svc := NewIdempotencyService(repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo.EXPECT().
		PurgeExpired(gomock.Any(), gomock.Any()).
		MinTimes(1).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			cancel()
			return 2, nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.RunCleanup(ctx, time.Millisecond)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}
