package reportservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/haruharu/groveback/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRequest(t *testing.T) {
	userID := uuid.New()

	t.Run("New month is queued as PENDING", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByMonth(gomock.Any(), userID, 2025, 4).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, report *domain.MonthlyReport) (*domain.MonthlyReport, error) {
				assert.Equal(t, userID, report.UserID)
				assert.Equal(t, 2025, report.Year)
				assert.Equal(t, 4, report.Month)
				report.Status = domain.ReportStatusPending
				return report, nil
			})

		report, err := service.Request(context.Background(), userID, 2025, 4)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReportStatusPending, report.Status)
	})

	t.Run("Requesting an existing month returns it unchanged", func(t *testing.T) {
		service, repo := NewMock(t)
		existing := &domain.MonthlyReport{
			UserID: userID, Year: 2025, Month: 4, Status: domain.ReportStatusReady,
		}
		repo.EXPECT().FindByMonth(gomock.Any(), userID, 2025, 4).Return(existing, nil)

		report, err := service.Request(context.Background(), userID, 2025, 4)
		assert.NoError(t, err)
		assert.Equal(t, existing, report)
	})

	t.Run("Month out of range", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Request(context.Background(), userID, 2025, 13)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

func TestGet(t *testing.T) {
	userID := uuid.New()

	t.Run("Existing report returned", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByMonth(gomock.Any(), userID, 2025, 4).Return(&domain.MonthlyReport{
			Status: domain.ReportStatusReady, Content: "a good month",
		}, nil)

		report, err := service.Get(context.Background(), userID, 2025, 4)
		assert.NoError(t, err)
		assert.Equal(t, "a good month", report.Content)
	})

	t.Run("Missing report", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByMonth(gomock.Any(), userID, 2025, 4).Return(nil, nil)

		report, err := service.Get(context.Background(), userID, 2025, 4)
		assert.ErrorIs(t, err, ErrReportNotFound)
		assert.Nil(t, report)
	})

	t.Run("Repo failure surfaces", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByMonth(gomock.Any(), userID, 2025, 4).Return(nil, errors.New("db error"))

		_, err := service.Get(context.Background(), userID, 2025, 4)
		assert.Error(t, err)
	})
}
