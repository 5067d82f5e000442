package traitservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/haruharu/groveback/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func intPtr(v int) *int { return &v }

func TestService_Get(t *testing.T) {
	userID := uuid.New()

	t.Run("Profile returned", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).
			Return(&domain.TraitScore{UserID: userID, Attention: 75}, nil)

		score, err := service.Get(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, 75, score.Attention)
	})

	t.Run("No profile yet is nil, not an error", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil)

		score, err := service.Get(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, score)
	})

	t.Run("Repo failure", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, assert.AnError)

		score, err := service.Get(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, score)
	})
}

func TestService_Upsert(t *testing.T) {
	userID := uuid.New()

	t.Run("First submission starts from a zero profile", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, score *domain.TraitScore) (*domain.TraitScore, error) {
				assert.Equal(t, userID, score.UserID)
				assert.Equal(t, 75, score.Attention)
				assert.Equal(t, 60, score.Impulsive)
				assert.Equal(t, 0, score.Complex)
				return score, nil
			})

		saved, err := service.Upsert(context.Background(), userID, Update{
			Attention: intPtr(75),
			Impulsive: intPtr(60),
		})
		assert.NoError(t, err)
		assert.Equal(t, 75, saved.Attention)
	})

	t.Run("Partial update keeps untouched dimensions", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).
			Return(&domain.TraitScore{
				UserID: userID, Attention: 75, Impulsive: 60, Complex: 45,
				Emotional: 80, Motivation: 55, Environment: 70,
			}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, score *domain.TraitScore) (*domain.TraitScore, error) {
				assert.Equal(t, 90, score.Attention)
				assert.Equal(t, 60, score.Impulsive)
				assert.Equal(t, 70, score.Environment)
				return score, nil
			})

		saved, err := service.Upsert(context.Background(), userID, Update{Attention: intPtr(90)})
		assert.NoError(t, err)
		assert.Equal(t, 90, saved.Attention)
	})

	t.Run("Score above 100 rejected", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil)

		saved, err := service.Upsert(context.Background(), userID, Update{Emotional: intPtr(101)})
		assert.ErrorIs(t, err, ErrInvalidTraitScore)
		assert.Nil(t, saved)
	})

	t.Run("Negative score rejected", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil)

		saved, err := service.Upsert(context.Background(), userID, Update{Motivation: intPtr(-1)})
		assert.ErrorIs(t, err, ErrInvalidTraitScore)
		assert.Nil(t, saved)
	})

	t.Run("Repo failure on save", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		saved, err := service.Upsert(context.Background(), userID, Update{Attention: intPtr(50)})
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}
