package dailylogservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/pkg/sanitize"
)

//go:generate mockgen -source=dailylogservice.go -destination=mock_dailylogservice.go -package=dailylogservice

const (
	maxRoutineScore = 4

	defaultListLimit = 30
	maxListLimit     = 100
)

var ErrInvalidRoutineScore = errors.New("routine score must be between 0 and 4")

type Repo interface {
	Upsert(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error)
	FindByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.DailyLog, error)
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DailyLog, error)
}

type RoutineCount struct {
	RoutineID string
	Count     int
}

type Stats struct {
	RoutineRanking  []RoutineCount
	TotalExecutions int
	CurrentStreak   int
	LongestStreak   int
	TotalDays       int
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Upsert stores the record for (user, date), replacing an earlier one for
// the same date. A zero date means today.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, log *domain.DailyLog) (*domain.DailyLog, error) {
	if log.RoutineScore < 0 || log.RoutineScore > maxRoutineScore {
		return nil, ErrInvalidRoutineScore
	}

	date := log.Date
	if date.IsZero() {
		date = s.now()
	}
	y, m, d := date.Date()
	normalized := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if dayNumber(normalized) > dayNumber(s.now()) {
		return nil, ErrFutureDate
	}

	saved, err := s.repo.Upsert(ctx, &domain.DailyLog{
		UserID:            userID,
		Date:              normalized,
		Mood:              log.Mood,
		RoutineScore:      log.RoutineScore,
		CompletedRoutines: log.CompletedRoutines,
		Note:              sanitize.Strict(log.Note),
	})
	if err != nil {
		zap.L().Error("can't upsert daily log", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *Service) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	log, err := s.repo.FindByDate(ctx, userID, date)
	if err != nil {
		zap.L().Error("can't fetch daily log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.DailyLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.repo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't list daily logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// GetStats aggregates routine execution counts and streaks over the user's
// whole calendar.
func (s *Service) GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	logs, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load logs for stats", zap.Error(err))
		return nil, err
	}

	counts := make(map[string]int)
	total := 0
	dates := make([]time.Time, 0, len(logs))
	for _, log := range logs {
		dates = append(dates, log.Date)
		for _, routineID := range log.CompletedRoutines {
			counts[routineID]++
			total++
		}
	}

	ranking := make([]RoutineCount, 0, len(counts))
	for id, count := range counts {
		ranking = append(ranking, RoutineCount{RoutineID: id, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].RoutineID < ranking[j].RoutineID
	})

	current, longest, err := StreakFor(dates, s.now())
	if err != nil {
		zap.L().Error("streak computation failed", zap.Error(err))
		return nil, err
	}

	return &Stats{
		RoutineRanking:  ranking,
		TotalExecutions: total,
		CurrentStreak:   current,
		LongestStreak:   longest,
		TotalDays:       len(logs),
	}, nil
}
