package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

const userColumns = `id, member_number, email, password_hash, nickname,
       coin_balance, xp, total_tag_count, is_active, last_login_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanUser(row pg.RowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.MemberNumber, &u.Email, &u.PasswordHash, &u.Nickname,
		&u.CoinBalance, &u.XP, &u.TotalTagCount, &u.IsActive, &u.LastLoginAt, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (member_number, email, password_hash, nickname)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + userColumns
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.MemberNumber, user.Email, user.PasswordHash, user.Nickname))
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetForUpdate reads the user row under an exclusive row lock. It is only
// meaningful inside a TXManager transaction; the lock is held until commit.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock user row", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id uuid.UUID, coinBalance, xp int64) error {
	query := `
        UPDATE users
        SET coin_balance = $1, xp = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, coinBalance, xp, id)
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IncrementTagCount bumps the raw check-in counter and returns the new value.
// Every tag counts, rewarded or not.
func (r *Repository) IncrementTagCount(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
        UPDATE users
        SET total_tag_count = total_tag_count + 1
        WHERE id = $1
        RETURNING total_tag_count
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&total); err != nil {
		zap.L().Error("can't increment tag count", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, nickname string) (*domain.User, error) {
	query := `
        UPDATE users
        SET nickname = $1
        WHERE id = $2
        RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, nickname, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_login_at = now() WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't update last login", zap.Error(err))
		return err
	}
	return nil
}
