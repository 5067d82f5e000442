package dailylogrepo

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

const logColumns = `id, user_id, date, mood, routine_score, completed_routines,
       note, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanLog(row pg.RowScanner) (*domain.DailyLog, error) {
	var l domain.DailyLog
	err := row.Scan(&l.ID, &l.UserID, &l.Date, &l.Mood, &l.RoutineScore,
		&l.CompletedRoutines, &l.Note, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Upsert inserts the log for (user, date) or replaces the existing one.
// The unique constraint keeps the same date from ever appearing twice.
func (r *Repository) Upsert(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error) {
	query := `
        INSERT INTO daily_logs (user_id, date, mood, routine_score, completed_routines, note)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, date) DO UPDATE
        SET mood = EXCLUDED.mood,
            routine_score = EXCLUDED.routine_score,
            completed_routines = EXCLUDED.completed_routines,
            note = EXCLUDED.note,
            updated_at = now()
        RETURNING ` + logColumns
	saved, err := scanLog(r.db.QueryRow(ctx, query,
		log.UserID, log.Date, log.Mood, log.RoutineScore, log.CompletedRoutines, log.Note))
	if err != nil {
		zap.L().Error("can't upsert daily log", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	query := `SELECT ` + logColumns + ` FROM daily_logs WHERE user_id = $1 AND date = $2`
	log, err := scanLog(r.db.QueryRow(ctx, query, userID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find daily log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.DailyLog, error) {
	query := `
        SELECT ` + logColumns + `
        FROM daily_logs
        WHERE user_id = $1
        ORDER BY date DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch daily logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.DailyLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			zap.L().Error("can't scan daily log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}

// FindAllByUserID returns every log for the user, newest first. Streak and
// ranking computations need the full calendar.
func (r *Repository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DailyLog, error) {
	query := `
        SELECT ` + logColumns + `
        FROM daily_logs
        WHERE user_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch daily logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.DailyLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			zap.L().Error("can't scan daily log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}
