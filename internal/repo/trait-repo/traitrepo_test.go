package traitrepo

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

var traitCols = []string{"id", "user_id", "attention", "impulsive", "complex",
	"emotional", "motivation", "environment", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByUser(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	t.Run("Profile found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM trait_scores WHERE user_id = $1`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(traitCols).
				AddRow(uuid.New(), userID, 75, 60, 45, 80, 55, 70, time.Now(), time.Now()))

		score, err := repo.FindByUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.NotNil(t, score)
		assert.Equal(t, 75, score.Attention)
		assert.Equal(t, 70, score.Environment)
	})

	t.Run("No profile is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM trait_scores WHERE user_id = $1`)).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		score, err := repo.FindByUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, score)
	})

	t.Run("Find failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM trait_scores WHERE user_id = $1`)).
			WithArgs(userID).
			WillReturnError(errors.New("connection reset"))

		score, err := repo.FindByUser(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, score)
	})
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	scoreID := uuid.New()

	t.Run("Profile stored and returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE`)).
			WithArgs(userID, 75, 60, 45, 80, 55, 70).
			WillReturnRows(pgxmock.NewRows(traitCols).
				AddRow(scoreID, userID, 75, 60, 45, 80, 55, 70, time.Now(), time.Now()))

		saved, err := repo.Upsert(context.Background(), &domain.TraitScore{
			UserID:      userID,
			Attention:   75,
			Impulsive:   60,
			Complex:     45,
			Emotional:   80,
			Motivation:  55,
			Environment: 70,
		})
		assert.NoError(t, err)
		assert.Equal(t, scoreID, saved.ID)
		assert.Equal(t, 55, saved.Motivation)
	})

	t.Run("Upsert failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE`)).
			WillReturnError(errors.New("constraint violation"))

		saved, err := repo.Upsert(context.Background(), &domain.TraitScore{UserID: userID})
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}
