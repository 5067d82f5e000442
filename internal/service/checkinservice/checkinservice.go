package checkinservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/metrics"
	"github.com/haruharu/groveback/internal/service/ledgerservice"
)

//go:generate mockgen -source=checkinservice.go -destination=mock_checkinservice.go -package=checkinservice

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserInactive          = errors.New("account is deactivated")
	ErrCardNotFound          = errors.New("nfc card not found")
	ErrCardInactive          = errors.New("nfc card is deactivated")
	ErrCardAlreadyRegistered = errors.New("card is already registered")
	ErrCardOwnedByOther      = errors.New("card is registered to another user")
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementTagCount(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type CardRepo interface {
	Create(ctx context.Context, card *domain.NfcCard) (*domain.NfcCard, error)
	FindByUID(ctx context.Context, cardUID string) (*domain.NfcCard, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.NfcCard, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.NfcCard, error)
	FindLastUsed(ctx context.Context, userID uuid.UUID) (*domain.NfcCard, error)
	Touch(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, card *domain.NfcCard) (*domain.NfcCard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Ledger is the slice of the reward ledger engine check-ins drive.
type Ledger interface {
	GrantDailyReward(ctx context.Context, userID uuid.UUID, referenceID string) (*domain.LedgerEntry, error)
	HasReceivedDailyRewardToday(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TokenIssuer issues an access token for card login.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID) (string, error)
}

type CheckinResult struct {
	AlreadyCheckedIn bool
	CoinsEarned      int64
	XPEarned         int64
	TotalTagCount    int64
	Message          string
}

type CheckinStatus struct {
	CheckedInToday bool
	LastCheckinAt  *time.Time
	TotalTagCount  int64
}

type CardLogin struct {
	Token string
	User  *domain.User
}

type Service struct {
	userRepo UserRepo
	cardRepo CardRepo
	ledger   Ledger
	tokens   TokenIssuer
}

func New(userRepo UserRepo, cardRepo CardRepo, ledger Ledger, tokens TokenIssuer) *Service {
	return &Service{
		userRepo: userRepo,
		cardRepo: cardRepo,
		ledger:   ledger,
		tokens:   tokens,
	}
}

// NormalizeCardUID strips separator colons and upcases so the same physical
// card always maps to one stored UID.
func NormalizeCardUID(cardUID string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(cardUID), ":", ""))
}

// MaskCardUID hides the middle of a UID for display.
func MaskCardUID(cardUID string) string {
	if len(cardUID) <= 6 {
		return cardUID
	}
	return cardUID[:4] + strings.Repeat("*", len(cardUID)-6) + cardUID[len(cardUID)-2:]
}

func (s *Service) RegisterCard(ctx context.Context, userID uuid.UUID, cardUID, cardName string) (*domain.NfcCard, error) {
	normalized := NormalizeCardUID(cardUID)

	existing, err := s.cardRepo.FindByUID(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.UserID == userID {
			return nil, ErrCardAlreadyRegistered
		}
		return nil, ErrCardOwnedByOther
	}

	card, err := s.cardRepo.Create(ctx, &domain.NfcCard{
		UserID:   userID,
		CardUID:  normalized,
		CardName: cardName,
	})
	if err != nil {
		zap.L().Error("can't register nfc card", zap.Error(err))
		return nil, err
	}
	zap.L().Info("nfc card registered", zap.String("userID", userID.String()))
	return card, nil
}

// Checkin records one tag for an authenticated user and tries to grant the
// daily reward. The tag counter moves on every call; the reward moves at
// most once per day.
func (s *Service) Checkin(ctx context.Context, userID uuid.UUID, cardUID string) (*CheckinResult, error) {
	total, err := s.userRepo.IncrementTagCount(ctx, userID)
	if err != nil {
		zap.L().Error("can't increment tag count", zap.Error(err))
		return nil, err
	}
	metrics.CheckinsTotal.Inc()

	if cardUID != "" {
		normalized := NormalizeCardUID(cardUID)
		card, err := s.cardRepo.FindByUID(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if card != nil && card.UserID == userID && card.IsActive {
			if err := s.cardRepo.Touch(ctx, card.ID); err != nil {
				return nil, err
			}
		}
	}

	entry, err := s.ledger.GrantDailyReward(ctx, userID, "")
	if err != nil {
		if errors.Is(err, ledgerservice.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if entry == nil {
		return &CheckinResult{
			AlreadyCheckedIn: true,
			TotalTagCount:    total,
			Message:          "Already checked in today. Come back tomorrow!",
		}, nil
	}

	metrics.RewardsGrantedTotal.Inc()
	return &CheckinResult{
		AlreadyCheckedIn: false,
		CoinsEarned:      entry.Amount,
		XPEarned:         entry.Amount,
		TotalTagCount:    total,
		Message:          "Check-in complete! Coins and XP earned!",
	}, nil
}

func (s *Service) CheckinStatus(ctx context.Context, userID uuid.UUID) (*CheckinStatus, error) {
	checked, err := s.ledger.HasReceivedDailyRewardToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var lastCheckin *time.Time
	lastCard, err := s.cardRepo.FindLastUsed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lastCard != nil {
		lastCheckin = lastCard.LastUsedAt
	}

	return &CheckinStatus{
		CheckedInToday: checked,
		LastCheckinAt:  lastCheckin,
		TotalTagCount:  user.TotalTagCount,
	}, nil
}

// LoginWithCard authenticates by physical card, issues a token and grants
// the daily reward as a side effect of the tap.
func (s *Service) LoginWithCard(ctx context.Context, cardUID string) (*CardLogin, error) {
	normalized := NormalizeCardUID(cardUID)

	card, err := s.cardRepo.FindByUID(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	if !card.IsActive {
		return nil, ErrCardInactive
	}

	user, err := s.userRepo.FindByID(ctx, card.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := s.cardRepo.Touch(ctx, card.ID); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	if _, err := s.ledger.GrantDailyReward(ctx, user.ID, card.ID.String()); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		zap.L().Error("can't issue token for card login", zap.Error(err))
		return nil, err
	}
	zap.L().Info("card login successful", zap.String("userID", user.ID.String()))
	return &CardLogin{Token: token, User: user}, nil
}

func (s *Service) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.NfcCard, error) {
	cards, err := s.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list nfc cards", zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (s *Service) UpdateCard(ctx context.Context, userID, cardID uuid.UUID, cardName *string, isActive *bool) (*domain.NfcCard, error) {
	card, err := s.findOwnedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if cardName != nil {
		card.CardName = *cardName
	}
	if isActive != nil {
		card.IsActive = *isActive
	}
	updated, err := s.cardRepo.Update(ctx, card)
	if err != nil {
		zap.L().Error("can't update nfc card", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	card, err := s.findOwnedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	return s.cardRepo.Delete(ctx, card.ID)
}

func (s *Service) findOwnedCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.NfcCard, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.UserID != userID {
		return nil, ErrCardNotFound
	}
	return card, nil
}
