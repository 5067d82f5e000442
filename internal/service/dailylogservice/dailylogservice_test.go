package dailylogservice

import (
	"context"
	"testing"
	"time"

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

func TestUpsert(t *testing.T) {
	userID := uuid.New()

	t.Run("Defaults to today and normalizes to UTC midnight", func(t *testing.T) {
		service, repo := NewMock(t)
		service.now = func() time.Time { return time.Date(2025, 4, 10, 21, 30, 0, 0, time.Local) }

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, log *domain.DailyLog) (*domain.DailyLog, error) {
				assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), log.Date)
				assert.Equal(t, userID, log.UserID)
				return log, nil
			})

		saved, err := service.Upsert(context.Background(), userID, &domain.DailyLog{
			Mood:         "sunny",
			RoutineScore: 3,
		})
		assert.NoError(t, err)
		assert.NotNil(t, saved)
	})

	t.Run("Note is sanitized", func(t *testing.T) {
		service, repo := NewMock(t)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, log *domain.DailyLog) (*domain.DailyLog, error) {
				assert.Equal(t, "hello", log.Note)
				return log, nil
			})

		_, err := service.Upsert(context.Background(), userID, &domain.DailyLog{
			Date: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
			Note: "<script>alert(1)</script>hello",
		})
		assert.NoError(t, err)
	})

	t.Run("Date after today is rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		service.now = func() time.Time { return time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC) }

		saved, err := service.Upsert(context.Background(), userID, &domain.DailyLog{
			Date: time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrFutureDate)
		assert.Nil(t, saved)
	})

	t.Run("Routine score out of range", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.Upsert(context.Background(), userID, &domain.DailyLog{RoutineScore: 5})
		assert.ErrorIs(t, err, ErrInvalidRoutineScore)

		_, err = service.Upsert(context.Background(), userID, &domain.DailyLog{RoutineScore: -1})
		assert.ErrorIs(t, err, ErrInvalidRoutineScore)
	})
}

func TestListLimits(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "Default limit", limit: 0, expectedLimit: 30},
		{name: "Explicit limit kept", limit: 50, expectedLimit: 50},
		{name: "Limit capped", limit: 500, expectedLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			repo.EXPECT().FindByUserID(gomock.Any(), userID, tt.expectedLimit, 0).
				Return([]domain.DailyLog{}, nil)

			_, err := service.List(context.Background(), userID, tt.limit, 0)
			assert.NoError(t, err)
		})
	}
}

func TestGetStats(t *testing.T) {
	userID := uuid.New()

	t.Run("Ranks routines and computes streaks", func(t *testing.T) {
		service, repo := NewMock(t)
		service.now = func() time.Time { return time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC) }

		repo.EXPECT().FindAllByUserID(gomock.Any(), userID).Return([]domain.DailyLog{
			{Date: day("2025-04-08"), CompletedRoutines: []string{"stretch", "water-plants"}},
			{Date: day("2025-04-09"), CompletedRoutines: []string{"stretch"}},
			{Date: day("2025-04-10"), CompletedRoutines: []string{"stretch", "journal"}},
		}, nil)

		stats, err := service.GetStats(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, 5, stats.TotalExecutions)
		assert.Equal(t, 3, stats.TotalDays)
		assert.Equal(t, 3, stats.CurrentStreak)
		assert.Equal(t, 3, stats.LongestStreak)

		assert.Equal(t, []RoutineCount{
			{RoutineID: "stretch", Count: 3},
			{RoutineID: "journal", Count: 1},
			{RoutineID: "water-plants", Count: 1},
		}, stats.RoutineRanking)
	})

	t.Run("Empty history", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindAllByUserID(gomock.Any(), userID).Return(nil, nil)

		stats, err := service.GetStats(context.Background(), userID)
		assert.NoError(t, err)
		assert.Zero(t, stats.CurrentStreak)
		assert.Zero(t, stats.LongestStreak)
		assert.Zero(t, stats.TotalExecutions)
		assert.Empty(t, stats.RoutineRanking)
	})
}
