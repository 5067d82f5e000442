package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, coinBalance, xp int64) error
}

type LedgerRepo interface {
	Insert(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindEarnedSince(ctx context.Context, userID uuid.UUID, description string, since time.Time) (*domain.LedgerEntry, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error)
}

const (
	// DailyReward is the fixed coin amount (and equal XP) for one check-in.
	DailyReward int64 = 15

	// DailyRewardDescription discriminates daily reward entries in the
	// ledger. The reward_day column enforces the same rule at the store.
	DailyRewardDescription = "daily check-in reward"

	lockRetries = 3

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientBalance is the target for errors.Is; the concrete
	// error carries the current and required amounts.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type InsufficientBalanceError struct {
	Current  int64
	Required int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Current, e.Required)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type Service struct {
	userRepo   UserRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
	now        func() time.Time
}

func New(userRepo UserRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		now:        time.Now,
	}
}

// startOfToday is the local-midnight lower bound of the current day window.
// The grant path and the read-only status path share it so the two never
// disagree on what "today" means.
func (s *Service) startOfToday() time.Time {
	now := s.now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// inTx runs fn inside one transaction, retrying on lock timeouts. The
// operations are transactional, so a retry never double-applies.
func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= lockRetries; attempt++ {
		err = s.txManager.Begin(ctx, fn)
		if !errors.Is(err, pg.ErrLockTimeout) {
			return err
		}
		zap.L().Warn("row lock timed out, retrying",
			zap.Int("attempt", attempt), zap.Error(err))
	}
	return err
}

// GrantDailyReward credits the fixed check-in reward at most once per local
// calendar day. The row lock is acquired before the existence check and held
// across the write; checking first would leave a race window.
//
// A nil entry with a nil error means the reward was already granted today.
func (s *Service) GrantDailyReward(ctx context.Context, userID uuid.UUID, referenceID string) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.inTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		existing, err := s.ledgerRepo.FindEarnedSince(ctx, userID, DailyRewardDescription, s.startOfToday())
		if err != nil {
			return err
		}
		if existing != nil {
			entry = nil
			return nil
		}

		newBalance := user.CoinBalance + DailyReward
		newXP := user.XP + DailyReward
		if err := s.userRepo.UpdateBalance(ctx, userID, newBalance, newXP); err != nil {
			return err
		}

		day := s.startOfToday()
		entry, err = s.ledgerRepo.Insert(ctx, &domain.LedgerEntry{
			UserID:       userID,
			Kind:         domain.KindEarn,
			Amount:       DailyReward,
			BalanceAfter: newBalance,
			Description:  DailyRewardDescription,
			ReferenceID:  referenceID,
			RewardDay:    &day,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't grant daily reward", zap.String("userID", userID.String()), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// Grant credits coins and equal XP unconditionally. Earn-type grants couple
// currency and progress on purpose; spends leave XP untouched.
func (s *Service) Grant(ctx context.Context, userID uuid.UUID, amount int64, kind domain.TransactionKind, description, referenceID string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var entry *domain.LedgerEntry
	err := s.inTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		newBalance := user.CoinBalance + amount
		newXP := user.XP + amount
		if err := s.userRepo.UpdateBalance(ctx, userID, newBalance, newXP); err != nil {
			return err
		}

		entry, err = s.ledgerRepo.Insert(ctx, &domain.LedgerEntry{
			UserID:       userID,
			Kind:         kind,
			Amount:       amount,
			BalanceAfter: newBalance,
			Description:  description,
			ReferenceID:  referenceID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't grant coins", zap.String("userID", userID.String()), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// Spend debits coins. The balance check runs under the same row lock as the
// debit; two concurrent overdrawing spends serialize and the second fails.
func (s *Service) Spend(ctx context.Context, userID uuid.UUID, amount int64, description, referenceID string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var entry *domain.LedgerEntry
	err := s.inTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.CoinBalance < amount {
			return &InsufficientBalanceError{Current: user.CoinBalance, Required: amount}
		}

		newBalance := user.CoinBalance - amount
		if err := s.userRepo.UpdateBalance(ctx, userID, newBalance, user.XP); err != nil {
			return err
		}

		entry, err = s.ledgerRepo.Insert(ctx, &domain.LedgerEntry{
			UserID:       userID,
			Kind:         domain.KindUse,
			Amount:       -amount,
			BalanceAfter: newBalance,
			Description:  description,
			ReferenceID:  referenceID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't spend coins", zap.String("userID", userID.String()), zap.Error(err))
		}
		return nil, err
	}
	return entry, nil
}

// SpendForXP debits cost coins and credits xpAmount XP in one transaction,
// recording a single USE entry. This is the watering-can path: XP gained
// without a matching coin credit.
func (s *Service) SpendForXP(ctx context.Context, userID uuid.UUID, cost, xpAmount int64, description, referenceID string) (*domain.LedgerEntry, error) {
	if cost <= 0 || xpAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	var entry *domain.LedgerEntry
	err := s.inTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.CoinBalance < cost {
			return &InsufficientBalanceError{Current: user.CoinBalance, Required: cost}
		}

		newBalance := user.CoinBalance - cost
		newXP := user.XP + xpAmount
		if err := s.userRepo.UpdateBalance(ctx, userID, newBalance, newXP); err != nil {
			return err
		}

		entry, err = s.ledgerRepo.Insert(ctx, &domain.LedgerEntry{
			UserID:       userID,
			Kind:         domain.KindUse,
			Amount:       -cost,
			BalanceAfter: newBalance,
			Description:  description,
			ReferenceID:  referenceID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't spend coins for xp", zap.String("userID", userID.String()), zap.Error(err))
		}
		return nil, err
	}
	return entry, nil
}

// HasReceivedDailyRewardToday is the lock-free read used by status
// endpoints. It applies the identical day window as GrantDailyReward.
func (s *Service) HasReceivedDailyRewardToday(ctx context.Context, userID uuid.UUID) (bool, error) {
	entry, err := s.ledgerRepo.FindEarnedSince(ctx, userID, DailyRewardDescription, s.startOfToday())
	if err != nil {
		zap.L().Error("can't check daily reward status", zap.Error(err))
		return false, err
	}
	return entry != nil, nil
}

func (s *Service) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.CoinBalance, nil
}

func (s *Service) GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := s.ledgerRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch coin history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
