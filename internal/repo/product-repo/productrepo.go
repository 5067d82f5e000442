package productrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT id, name, description, price, is_active, created_at
        FROM products
        WHERE is_active
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.IsActive, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
        SELECT id, name, description, price, is_active, created_at
        FROM products
        WHERE id = $1
    `
	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.IsActive, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
