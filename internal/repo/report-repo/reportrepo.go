package reportrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

const reportColumns = `id, user_id, year, month, content, status, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanReport(row pg.RowScanner) (*domain.MonthlyReport, error) {
	var rep domain.MonthlyReport
	err := row.Scan(&rep.ID, &rep.UserID, &rep.Year, &rep.Month, &rep.Content,
		&rep.Status, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *Repository) Create(ctx context.Context, report *domain.MonthlyReport) (*domain.MonthlyReport, error) {
	query := `
        INSERT INTO monthly_reports (user_id, year, month, status)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + reportColumns
	saved, err := scanReport(r.db.QueryRow(ctx, query, report.UserID, report.Year, report.Month, domain.ReportStatusPending))
	if err != nil {
		zap.L().Error("can't create monthly report", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByMonth(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthlyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM monthly_reports WHERE user_id = $1 AND year = $2 AND month = $3`
	report, err := scanReport(r.db.QueryRow(ctx, query, userID, year, month))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find monthly report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.MonthlyReport, error) {
	query := `
        SELECT ` + reportColumns + `
        FROM monthly_reports
        WHERE status = 'PENDING'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't fetch pending reports", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reports []domain.MonthlyReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			zap.L().Error("can't scan report row", zap.Error(err))
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (r *Repository) Update(ctx context.Context, report *domain.MonthlyReport) error {
	query := `
        UPDATE monthly_reports
        SET content = $1, status = $2, updated_at = now()
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, report.Content, report.Status, report.ID); err != nil {
		zap.L().Error("can't update monthly report", zap.Error(err))
		return err
	}
	return nil
}
