package checkinservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockCardRepo, *MockLedger, *MockTokenIssuer) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	cardRepo := NewMockCardRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	tokens := NewMockTokenIssuer(ctrl)
	service := New(userRepo, cardRepo, ledger, tokens)
	defer ctrl.Finish()
	return service, userRepo, cardRepo, ledger, tokens
}

func TestNormalizeCardUID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Colon separated lowercase", input: "04:a3:22:f1", expected: "04A322F1"},
		{name: "Already normalized", input: "04A322F1", expected: "04A322F1"},
		{name: "Surrounding whitespace", input: "  04:A3:22:F1  ", expected: "04A322F1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCardUID(tt.input))
		})
	}
}

func TestMaskCardUID(t *testing.T) {
	assert.Equal(t, "04A3********01", MaskCardUID("04A322F1800001"))
	assert.Equal(t, "04A322", MaskCardUID("04A322"))
}

func TestCheckin(t *testing.T) {
	userID := uuid.New()

	t.Run("First check-in of the day earns the reward", func(t *testing.T) {
		service, userRepo, _, ledger, _ := NewMock(t)

		userRepo.EXPECT().IncrementTagCount(gomock.Any(), userID).Return(int64(43), nil)
		ledger.EXPECT().GrantDailyReward(gomock.Any(), userID, "").Return(&domain.LedgerEntry{
			Kind: domain.KindEarn, Amount: 15,
		}, nil)

		result, err := service.Checkin(context.Background(), userID, "")
		assert.NoError(t, err)
		assert.False(t, result.AlreadyCheckedIn)
		assert.Equal(t, int64(15), result.CoinsEarned)
		assert.Equal(t, int64(15), result.XPEarned)
		assert.Equal(t, int64(43), result.TotalTagCount)
		assert.Equal(t, "Check-in complete! Coins and XP earned!", result.Message)
	})

	t.Run("Repeat check-in still counts the tag", func(t *testing.T) {
		service, userRepo, _, ledger, _ := NewMock(t)

		userRepo.EXPECT().IncrementTagCount(gomock.Any(), userID).Return(int64(44), nil)
		ledger.EXPECT().GrantDailyReward(gomock.Any(), userID, "").Return(nil, nil)

		result, err := service.Checkin(context.Background(), userID, "")
		assert.NoError(t, err)
		assert.True(t, result.AlreadyCheckedIn)
		assert.Zero(t, result.CoinsEarned)
		assert.Equal(t, int64(44), result.TotalTagCount)
		assert.Equal(t, "Already checked in today. Come back tomorrow!", result.Message)
	})

	t.Run("Own active card is touched", func(t *testing.T) {
		service, userRepo, cardRepo, ledger, _ := NewMock(t)
		cardID := uuid.New()

		userRepo.EXPECT().IncrementTagCount(gomock.Any(), userID).Return(int64(1), nil)
		cardRepo.EXPECT().FindByUID(gomock.Any(), "04A322F1").Return(&domain.NfcCard{
			ID: cardID, UserID: userID, IsActive: true,
		}, nil)
		cardRepo.EXPECT().Touch(gomock.Any(), cardID).Return(nil)
		ledger.EXPECT().GrantDailyReward(gomock.Any(), userID, "").Return(nil, nil)

		_, err := service.Checkin(context.Background(), userID, "04:a3:22:f1")
		assert.NoError(t, err)
	})

	t.Run("Unknown user from ledger", func(t *testing.T) {
		service, userRepo, _, ledger, _ := NewMock(t)

		userRepo.EXPECT().IncrementTagCount(gomock.Any(), userID).Return(int64(1), nil)
		ledger.EXPECT().GrantDailyReward(gomock.Any(), userID, "").Return(nil, ledgerservice.ErrUserNotFound)

		result, err := service.Checkin(context.Background(), userID, "")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, result)
	})
}

func TestCheckinStatus(t *testing.T) {
	userID := uuid.New()

	service, userRepo, cardRepo, ledger, _ := NewMock(t)
	ledger.EXPECT().HasReceivedDailyRewardToday(gomock.Any(), userID).Return(true, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{
		ID: userID, TotalTagCount: 42,
	}, nil)
	cardRepo.EXPECT().FindLastUsed(gomock.Any(), userID).Return(nil, nil)

	status, err := service.CheckinStatus(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, status.CheckedInToday)
	assert.Nil(t, status.LastCheckinAt)
	assert.Equal(t, int64(42), status.TotalTagCount)
}

func TestLoginWithCard(t *testing.T) {
	userID := uuid.New()
	cardID := uuid.New()

	t.Run("Successful card login", func(t *testing.T) {
		service, userRepo, cardRepo, ledger, tokens := NewMock(t)

		cardRepo.EXPECT().FindByUID(gomock.Any(), "04A322F1").Return(&domain.NfcCard{
			ID: cardID, UserID: userID, IsActive: true,
		}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{
			ID: userID, IsActive: true,
		}, nil)
		cardRepo.EXPECT().Touch(gomock.Any(), cardID).Return(nil)
		userRepo.EXPECT().UpdateLastLogin(gomock.Any(), userID).Return(nil)
		ledger.EXPECT().GrantDailyReward(gomock.Any(), userID, cardID.String()).Return(&domain.LedgerEntry{}, nil)
		tokens.EXPECT().GenerateToken(userID).Return("token123", nil)

		login, err := service.LoginWithCard(context.Background(), "04:A3:22:F1")
		assert.NoError(t, err)
		assert.Equal(t, "token123", login.Token)
		assert.Equal(t, userID, login.User.ID)
	})

	t.Run("Unknown card", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByUID(gomock.Any(), gomock.Any()).Return(nil, nil)

		login, err := service.LoginWithCard(context.Background(), "04A322F1")
		assert.ErrorIs(t, err, ErrCardNotFound)
		assert.Nil(t, login)
	})

	t.Run("Deactivated card", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByUID(gomock.Any(), gomock.Any()).Return(&domain.NfcCard{
			ID: cardID, UserID: userID, IsActive: false,
		}, nil)

		login, err := service.LoginWithCard(context.Background(), "04A322F1")
		assert.ErrorIs(t, err, ErrCardInactive)
		assert.Nil(t, login)
	})

	t.Run("Deactivated account", func(t *testing.T) {
		service, userRepo, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByUID(gomock.Any(), gomock.Any()).Return(&domain.NfcCard{
			ID: cardID, UserID: userID, IsActive: true,
		}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{
			ID: userID, IsActive: false,
		}, nil)

		login, err := service.LoginWithCard(context.Background(), "04A322F1")
		assert.ErrorIs(t, err, ErrUserInactive)
		assert.Nil(t, login)
	})
}

func TestRegisterCard(t *testing.T) {
	userID := uuid.New()

	t.Run("New card is stored normalized", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)

		cardRepo.EXPECT().FindByUID(gomock.Any(), "04A322F1").Return(nil, nil)
		cardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, card *domain.NfcCard) (*domain.NfcCard, error) {
				assert.Equal(t, "04A322F1", card.CardUID)
				assert.Equal(t, userID, card.UserID)
				return card, nil
			})

		card, err := service.RegisterCard(context.Background(), userID, "04:a3:22:f1", "entrance sticker")
		assert.NoError(t, err)
		assert.NotNil(t, card)
	})

	t.Run("Duplicate card of same user", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByUID(gomock.Any(), gomock.Any()).Return(&domain.NfcCard{UserID: userID}, nil)

		_, err := service.RegisterCard(context.Background(), userID, "04A322F1", "")
		assert.ErrorIs(t, err, ErrCardAlreadyRegistered)
	})

	t.Run("Card owned by another user", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByUID(gomock.Any(), gomock.Any()).Return(&domain.NfcCard{UserID: uuid.New()}, nil)

		_, err := service.RegisterCard(context.Background(), userID, "04A322F1", "")
		assert.ErrorIs(t, err, ErrCardOwnedByOther)
	})
}

func TestUpdateAndDeleteCard(t *testing.T) {
	userID := uuid.New()
	cardID := uuid.New()

	t.Run("Update own card", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		newName := "desk sticker"
		inactive := false

		cardRepo.EXPECT().FindByID(gomock.Any(), cardID).Return(&domain.NfcCard{
			ID: cardID, UserID: userID, CardName: "old", IsActive: true,
		}, nil)
		cardRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, card *domain.NfcCard) (*domain.NfcCard, error) {
				assert.Equal(t, "desk sticker", card.CardName)
				assert.False(t, card.IsActive)
				return card, nil
			})

		card, err := service.UpdateCard(context.Background(), userID, cardID, &newName, &inactive)
		assert.NoError(t, err)
		assert.NotNil(t, card)
	})

	t.Run("Card of another user is invisible", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByID(gomock.Any(), cardID).Return(&domain.NfcCard{
			ID: cardID, UserID: uuid.New(),
		}, nil)

		err := service.DeleteCard(context.Background(), userID, cardID)
		assert.ErrorIs(t, err, ErrCardNotFound)
	})

	t.Run("Delete own card", func(t *testing.T) {
		service, _, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByID(gomock.Any(), cardID).Return(&domain.NfcCard{
			ID: cardID, UserID: userID,
		}, nil)
		cardRepo.EXPECT().Delete(gomock.Any(), cardID).Return(nil)

		err := service.DeleteCard(context.Background(), userID, cardID)
		assert.NoError(t, err)
	})
}
