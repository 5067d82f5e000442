package userrepo

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

var userCols = []string{"id", "member_number", "email", "password_hash", "nickname",
	"coin_balance", "xp", "total_tag_count", "is_active", "last_login_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRow(id uuid.UUID, email string, balance, xp int64) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).
		AddRow(id, "79927398713", email, "hashed", "Haru",
			balance, xp, int64(0), true, (*time.Time)(nil), time.Now())
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:  "User found",
			email: "haru@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
					WithArgs("haru@example.com").
					WillReturnRows(userRow(userID, "haru@example.com", 100, 200))
			},
			found: true,
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:  "Database error",
			email: "haru@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
					WithArgs("haru@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	t.Run("Row locked and returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1 FOR UPDATE`)).
			WithArgs(userID).
			WillReturnRows(userRow(userID, "haru@example.com", 100, 200))

		user, err := repo.GetForUpdate(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, int64(100), user.CoinBalance)
	})

	t.Run("Missing user is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1 FOR UPDATE`)).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetForUpdate(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	t.Run("Balance updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET coin_balance = $1, xp = $2`)).
			WithArgs(int64(115), int64(215), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateBalance(context.Background(), userID, 115, 215)
		assert.NoError(t, err)
	})

	t.Run("No row updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET coin_balance = $1, xp = $2`)).
			WithArgs(int64(115), int64(215), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateBalance(context.Background(), userID, 115, 215)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_IncrementTagCount(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SET total_tag_count = total_tag_count + 1`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"total_tag_count"}).AddRow(int64(43)))

	total, err := repo.IncrementTagCount(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(43), total)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	t.Run("User created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("79927398713", "haru@example.com", "hashed", "Haru").
			WillReturnRows(userRow(userID, "haru@example.com", 0, 0))

		user, err := repo.Create(context.Background(), &domain.User{
			MemberNumber: "79927398713",
			Email:        "haru@example.com",
			PasswordHash: "hashed",
			Nickname:     "Haru",
		})
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
}
