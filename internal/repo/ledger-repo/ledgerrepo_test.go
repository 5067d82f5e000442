package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/haruharu/groveback/internal/domain"
)

var entryCols = []string{"id", "user_id", "kind", "amount", "balance_after",
	"description", "reference_id", "reward_day", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func entryRow(id, userID uuid.UUID, kind domain.TransactionKind, amount, after int64, description string) *pgxmock.Rows {
	return pgxmock.NewRows(entryCols).
		AddRow(id, userID, kind, amount, after, description, "", (*time.Time)(nil), time.Now())
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	entryID := uuid.New()

	t.Run("Entry inserted and returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO coin_histories`)).
			WithArgs(userID, domain.KindEarn, int64(15), int64(115), "daily check-in reward", "", (*time.Time)(nil)).
			WillReturnRows(entryRow(entryID, userID, domain.KindEarn, 15, 115, "daily check-in reward"))

		saved, err := repo.Insert(context.Background(), &domain.LedgerEntry{
			UserID:       userID,
			Kind:         domain.KindEarn,
			Amount:       15,
			BalanceAfter: 115,
			Description:  "daily check-in reward",
		})
		assert.NoError(t, err)
		assert.Equal(t, entryID, saved.ID)
		assert.Equal(t, int64(115), saved.BalanceAfter)
	})

	t.Run("Insert failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO coin_histories`)).
			WillReturnError(errors.New("constraint violation"))

		saved, err := repo.Insert(context.Background(), &domain.LedgerEntry{UserID: userID})
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_FindEarnedSince(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	since := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Entry found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND kind = $2 AND description = $3 AND created_at >= $4`)).
			WithArgs(userID, domain.KindEarn, "daily check-in reward", since).
			WillReturnRows(entryRow(uuid.New(), userID, domain.KindEarn, 15, 115, "daily check-in reward"))

		entry, err := repo.FindEarnedSince(context.Background(), userID, "daily check-in reward", since)
		assert.NoError(t, err)
		assert.NotNil(t, entry)
	})

	t.Run("No entry is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND kind = $2 AND description = $3 AND created_at >= $4`)).
			WithArgs(userID, domain.KindEarn, "daily check-in reward", since).
			WillReturnError(pgx.ErrNoRows)

		entry, err := repo.FindEarnedSince(context.Background(), userID, "daily check-in reward", since)
		assert.NoError(t, err)
		assert.Nil(t, entry)
	})
}

func TestRepository_CountEarned(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*)`)).
		WithArgs(userID, domain.KindEarn, "daily check-in reward", time.Time{}).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.CountEarned(context.Background(), userID, "daily check-in reward", time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	rows := pgxmock.NewRows(entryCols).
		AddRow(uuid.New(), userID, domain.KindEarn, int64(15), int64(30), "daily check-in reward", "", (*time.Time)(nil), time.Now()).
		AddRow(uuid.New(), userID, domain.KindUse, int64(-15), int64(15), "watering can purchase", "", (*time.Time)(nil), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(userID, 20, 0).
		WillReturnRows(rows)

	entries, err := repo.FindByUserID(context.Background(), userID, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.KindEarn, entries[0].Kind)
	assert.Equal(t, domain.KindUse, entries[1].Kind)
}

func TestRepository_SumAmounts(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT coalesce(sum(amount), 0) FROM coin_histories`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(85)))

	sum, err := repo.SumAmounts(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(85), sum)
}
