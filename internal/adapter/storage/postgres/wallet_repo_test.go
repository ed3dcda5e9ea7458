package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	w := &domain.Wallet{
		ID:          uuid.New(),
		OwnerUserID: uuid.New(),
		Currency:    "IDR",
		Status:      domain.WalletStatusActive,
		Type:        domain.WalletTypePersonal,
		Name:        "main wallet",
		Balance:     decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.ID, w.OwnerUserID, w.Currency, w.Status, w.Type, w.Name,
			w.Balance, w.IsDefaultForUser, w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	w, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, w)
}

func TestWalletRepo_View(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT status, balance FROM wallets").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"status", "balance"}).
			AddRow(domain.WalletStatusActive, decimal.RequireFromString("100.00")))

	v, err := repo.View(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, domain.WalletStatusActive, v.Status)
	assert.True(t, v.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestWalletRepo_AdjustBalance_Applied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()
	delta := decimal.RequireFromString("-60.00")

	mock.ExpectQuery("UPDATE wallets").
		WithArgs(id, delta).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).
			AddRow(decimal.RequireFromString("40.00")))

	newBalance, err := repo.AdjustBalance(context.Background(), id, delta)
	require.NoError(t, err)
	require.NotNil(t, newBalance)
	assert.True(t, newBalance.Equal(decimal.RequireFromString("40.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AdjustBalance_ConditionRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()
	delta := decimal.RequireFromString("-150.00")

	// The conditional UPDATE matches no row when the delta would go negative.
	mock.ExpectQuery("UPDATE wallets").
		WithArgs(id, delta).
		WillReturnError(pgx.ErrNoRows)

	newBalance, err := repo.AdjustBalance(context.Background(), id, delta)
	assert.NoError(t, err)
	assert.Nil(t, newBalance)
}

func TestWalletRepo_UpdateInfo_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET name").
		WithArgs(id, "renamed", domain.WalletStatusSuspended).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateInfo(context.Background(), tx, id, "renamed", domain.WalletStatusSuspended)
	assert.Error(t, err)
}
