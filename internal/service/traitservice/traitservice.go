package traitservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
)

const maxTraitScore = 100

var ErrInvalidTraitScore = errors.New("trait score must be between 0 and 100")

//go:generate mockgen -source=traitservice.go -destination=mock_traitservice.go -package=traitservice
type Repo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*domain.TraitScore, error)
	Upsert(ctx context.Context, score *domain.TraitScore) (*domain.TraitScore, error)
}

// Update carries the dimensions to change; nil fields keep their stored
// value, so a partial submission never zeroes the rest of the profile.
type Update struct {
	Attention   *int
	Impulsive   *int
	Complex     *int
	Emotional   *int
	Motivation  *int
	Environment *int
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Get returns the user's trait profile, or nil when none was recorded yet.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.TraitScore, error) {
	score, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't fetch trait score", zap.Error(err))
		return nil, err
	}
	return score, nil
}

// Upsert merges the submitted dimensions onto the stored profile (or a zero
// profile on first submission) and saves the result.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, update Update) (*domain.TraitScore, error) {
	existing, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't load trait score for update", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		existing = &domain.TraitScore{UserID: userID}
	}

	fields := []struct {
		value  *int
		target *int
	}{
		{update.Attention, &existing.Attention},
		{update.Impulsive, &existing.Impulsive},
		{update.Complex, &existing.Complex},
		{update.Emotional, &existing.Emotional},
		{update.Motivation, &existing.Motivation},
		{update.Environment, &existing.Environment},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if *f.value < 0 || *f.value > maxTraitScore {
			return nil, ErrInvalidTraitScore
		}
		*f.target = *f.value
	}

	saved, err := s.repo.Upsert(ctx, existing)
	if err != nil {
		zap.L().Error("can't upsert trait score", zap.Error(err))
		return nil, err
	}
	return saved, nil
}
