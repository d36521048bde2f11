package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
