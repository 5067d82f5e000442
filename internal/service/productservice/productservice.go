package productservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/metrics"
)

//go:generate mockgen -source=productservice.go -destination=mock_productservice.go -package=productservice

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not for sale")
)

type Repo interface {
	FindActive(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// Ledger is the spend path of the reward ledger engine.
type Ledger interface {
	Spend(ctx context.Context, userID uuid.UUID, amount int64, description, referenceID string) (*domain.LedgerEntry, error)
}

type Service struct {
	repo   Repo
	ledger Ledger
}

func New(repo Repo, ledger Ledger) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// Purchase debits the product price through the ledger engine. Balance
// verification happens under the account row lock inside Spend.
func (s *Service) Purchase(ctx context.Context, userID, productID uuid.UUID) (*domain.LedgerEntry, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	entry, err := s.ledger.Spend(ctx, userID, product.Price,
		fmt.Sprintf("product purchase: %s", product.Name), product.ID.String())
	if err != nil {
		return nil, err
	}

	metrics.CoinsSpentTotal.Add(float64(product.Price))
	zap.L().Info("product purchased",
		zap.String("userID", userID.String()),
		zap.String("productID", productID.String()),
		zap.Int64("price", product.Price))
	return entry, nil
}
