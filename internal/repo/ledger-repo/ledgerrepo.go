package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

const entryColumns = `id, user_id, kind, amount, balance_after, description,
       reference_id, reward_day, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanEntry(row pg.RowScanner) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Kind, &e.Amount, &e.BalanceAfter,
		&e.Description, &e.ReferenceID, &e.RewardDay, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Insert appends one entry. Entries are never updated or deleted.
func (r *Repository) Insert(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO coin_histories (user_id, kind, amount, balance_after, description, reference_id, reward_day)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + entryColumns
	saved, err := scanEntry(r.db.QueryRow(ctx, query,
		entry.UserID, entry.Kind, entry.Amount, entry.BalanceAfter,
		entry.Description, entry.ReferenceID, entry.RewardDay))
	if err != nil {
		zap.L().Error("can't insert ledger entry", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// FindEarnedSince returns the first EARN entry with the given description
// created at or after the lower bound. Used for the daily reward window test.
func (r *Repository) FindEarnedSince(ctx context.Context, userID uuid.UUID, description string, since time.Time) (*domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM coin_histories
        WHERE user_id = $1 AND kind = $2 AND description = $3 AND created_at >= $4
        ORDER BY created_at ASC
        LIMIT 1
    `
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID, domain.KindEarn, description, since))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't query earned entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// CountEarned counts EARN entries matching the description, optionally
// bounded below by since (zero time means no bound).
func (r *Repository) CountEarned(ctx context.Context, userID uuid.UUID, description string, since time.Time) (int64, error) {
	query := `
        SELECT count(*)
        FROM coin_histories
        WHERE user_id = $1 AND kind = $2 AND description = $3 AND created_at >= $4
    `
	var count int64
	if err := r.db.QueryRow(ctx, query, userID, domain.KindEarn, description, since).Scan(&count); err != nil {
		zap.L().Error("can't count earned entries", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM coin_histories
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// SumAmounts reconstructs the balance from the audit trail. Reconciliation
// only; live reads use the cached column on the user row.
func (r *Repository) SumAmounts(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT coalesce(sum(amount), 0) FROM coin_histories WHERE user_id = $1`
	var sum int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum ledger amounts", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
