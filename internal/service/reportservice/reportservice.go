package reportservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
)

var (
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrReportNotFound = errors.New("report not found")
)

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice
type Repo interface {
	Create(ctx context.Context, report *domain.MonthlyReport) (*domain.MonthlyReport, error)
	FindByMonth(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthlyReport, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.MonthlyReport, error)
	Update(ctx context.Context, report *domain.MonthlyReport) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Request queues generation of a monthly report. At most one report exists
// per user and month; requesting an existing month returns that report.
func (s *Service) Request(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	existing, err := s.repo.FindByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	report, err := s.repo.Create(ctx, &domain.MonthlyReport{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("monthly report queued",
		zap.String("userID", userID.String()),
		zap.Int("year", year),
		zap.Int("month", month))
	return report, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	report, err := s.repo.FindByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}
