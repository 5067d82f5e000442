package growthservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/service/ledgerservice"
)

//go:generate mockgen -source=growthservice.go -destination=mock_growthservice.go -package=growthservice

const (
	WateringCanCost    int64 = 15
	WateringCanXPBonus int64 = 30

	wateringCanDescription = "watering can purchase"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type LedgerRepo interface {
	CountEarned(ctx context.Context, userID uuid.UUID, description string, since time.Time) (int64, error)
}

// Ledger is the slice of the reward ledger engine the growth view needs.
type Ledger interface {
	SpendForXP(ctx context.Context, userID uuid.UUID, cost, xpAmount int64, description, referenceID string) (*domain.LedgerEntry, error)
	HasReceivedDailyRewardToday(ctx context.Context, userID uuid.UUID) (bool, error)
}

type GrowthTree struct {
	CurrentXP       int64
	Coins           int64
	Level           int
	XPToNextLevel   int64
	ProgressPercent int
	TreeStage       int
	TreeStageName   string
	TotalCheckins   int64
	MonthlyCheckins int64
	CheckedInToday  bool
}

type WateringCanResult struct {
	Success    bool
	Message    string
	XPGained   int64
	NewTotalXP int64
	NewLevel   int
}

type Service struct {
	userRepo   UserRepo
	ledgerRepo LedgerRepo
	ledger     Ledger
	now        func() time.Time
}

func New(userRepo UserRepo, ledgerRepo LedgerRepo, ledger Ledger) *Service {
	return &Service{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		ledger:     ledger,
		now:        time.Now,
	}
}

// GetGrowthTree assembles the tree view. The three check-in statistics are
// independent reads, fetched concurrently; no locks are taken.
func (s *Service) GetGrowthTree(ctx context.Context, userID uuid.UUID) (*GrowthTree, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load user for growth tree", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	level := LevelFor(user.XP)
	progress := ProgressFor(user.XP, level)
	stage, stageName := StageFor(level)

	tree := &GrowthTree{
		CurrentXP:       user.XP,
		Coins:           user.CoinBalance,
		Level:           level,
		XPToNextLevel:   progress.XPToNextLevel,
		ProgressPercent: progress.ProgressPercent,
		TreeStage:       stage,
		TreeStageName:   stageName,
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.ledgerRepo.CountEarned(gctx, userID, ledgerservice.DailyRewardDescription, time.Time{})
		tree.TotalCheckins = total
		return err
	})
	g.Go(func() error {
		monthly, err := s.ledgerRepo.CountEarned(gctx, userID, ledgerservice.DailyRewardDescription, monthStart)
		tree.MonthlyCheckins = monthly
		return err
	})
	g.Go(func() error {
		checked, err := s.ledger.HasReceivedDailyRewardToday(gctx, userID)
		tree.CheckedInToday = checked
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load check-in stats", zap.Error(err))
		return nil, err
	}

	return tree, nil
}

// PurchaseWateringCan spends coins for an immediate XP bonus. Running out of
// coins is a normal outcome reported in the result, not an error.
func (s *Service) PurchaseWateringCan(ctx context.Context, userID uuid.UUID) (*WateringCanResult, error) {
	_, err := s.ledger.SpendForXP(ctx, userID, WateringCanCost, WateringCanXPBonus, wateringCanDescription, "")
	if err != nil {
		var insufficient *ledgerservice.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			user, uerr := s.userRepo.FindByID(ctx, userID)
			if uerr != nil {
				return nil, uerr
			}
			if user == nil {
				return nil, ErrUserNotFound
			}
			return &WateringCanResult{
				Success: false,
				Message: fmt.Sprintf("Not enough coins. (current: %d, required: %d)",
					insufficient.Current, insufficient.Required),
				XPGained:   0,
				NewTotalXP: user.XP,
				NewLevel:   LevelFor(user.XP),
			}, nil
		}
		if errors.Is(err, ledgerservice.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		zap.L().Error("can't purchase watering can", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &WateringCanResult{
		Success:    true,
		Message:    "You watered the tree! XP gained!",
		XPGained:   WateringCanXPBonus,
		NewTotalXP: user.XP,
		NewLevel:   LevelFor(user.XP),
	}, nil
}
