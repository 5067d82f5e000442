package traitrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

const traitColumns = `id, user_id, attention, impulsive, complex, emotional,
       motivation, environment, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanTraitScore(row pg.RowScanner) (*domain.TraitScore, error) {
	var ts domain.TraitScore
	err := row.Scan(&ts.ID, &ts.UserID, &ts.Attention, &ts.Impulsive, &ts.Complex,
		&ts.Emotional, &ts.Motivation, &ts.Environment, &ts.CreatedAt, &ts.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*domain.TraitScore, error) {
	query := `SELECT ` + traitColumns + ` FROM trait_scores WHERE user_id = $1`
	score, err := scanTraitScore(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find trait score", zap.Error(err))
		return nil, err
	}
	return score, nil
}

// Upsert inserts the user's trait profile or replaces the existing one.
// One row per user, enforced by the unique constraint.
func (r *Repository) Upsert(ctx context.Context, score *domain.TraitScore) (*domain.TraitScore, error) {
	query := `
        INSERT INTO trait_scores (user_id, attention, impulsive, complex, emotional, motivation, environment)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE
        SET attention = EXCLUDED.attention,
            impulsive = EXCLUDED.impulsive,
            complex = EXCLUDED.complex,
            emotional = EXCLUDED.emotional,
            motivation = EXCLUDED.motivation,
            environment = EXCLUDED.environment,
            updated_at = now()
        RETURNING ` + traitColumns
	saved, err := scanTraitScore(r.db.QueryRow(ctx, query,
		score.UserID, score.Attention, score.Impulsive, score.Complex,
		score.Emotional, score.Motivation, score.Environment))
	if err != nil {
		zap.L().Error("can't upsert trait score", zap.Error(err))
		return nil, err
	}
	return saved, nil
}
