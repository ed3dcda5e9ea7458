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

func TestReadModelRepo_UpsertWalletSummary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReadModelRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := &domain.WalletSummary{
		WalletID:        uuid.New(),
		OwnerUserID:     uuid.New(),
		Currency:        "IDR",
		Status:          domain.WalletStatusActive,
		Type:            domain.WalletTypeShared,
		Name:            "family",
		BalanceSnapshot: decimal.RequireFromString("250.00"),
		MembersActive:   3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	mock.ExpectExec("INSERT INTO wallet_read").
		WithArgs(s.WalletID, s.OwnerUserID, s.Currency, s.Status, s.Type, s.Name,
			s.BalanceSnapshot, s.MembersActive, s.IsDefaultForUser, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertWalletSummary(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_UpdateBalanceSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReadModelRepo(mock)
	walletID := uuid.New()

	mock.ExpectExec("UPDATE wallet_read SET balance_snapshot").
		WithArgs(walletID, decimal.RequireFromString("40.00")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateBalanceSnapshot(context.Background(), walletID, decimal.RequireFromString("40.00"))
	assert.NoError(t, err)
}

func TestReadModelRepo_SetDefaultWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReadModelRepo(mock)
	userID, walletID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallet_read SET is_default_for_user = FALSE").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE wallet_read SET is_default_for_user = TRUE").
		WithArgs(walletID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO user_receive_prefs").
		WithArgs(userID, walletID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.SetDefaultWallet(context.Background(), userID, walletID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadModelRepo_SetDefaultWallet_SummaryMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReadModelRepo(mock)
	userID, walletID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallet_read SET is_default_for_user = FALSE").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("UPDATE wallet_read SET is_default_for_user = TRUE").
		WithArgs(walletID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = repo.SetDefaultWallet(context.Background(), userID, walletID)
	assert.Error(t, err)
}

func TestReadModelRepo_GetDefaultWallet_Absent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReadModelRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM user_receive_prefs").
		WithArgs(userID).
		WillReturnError(pgx.ErrNoRows)

	s, err := repo.GetDefaultWallet(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestReadModelRepo_RemoveWalletMembers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReadModelRepo(mock)
	walletID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM wallet_member_read").
		WithArgs(walletID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM user_wallet_read").
		WithArgs(walletID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("UPDATE wallet_read SET members_active").
		WithArgs(walletID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err = repo.RemoveWalletMembers(context.Background(), walletID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
