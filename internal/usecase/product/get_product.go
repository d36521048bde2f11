package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
)

type GetProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewGetProductUseCase(productRepo repository.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}

type ListProductsUseCase struct {
	productRepo repository.ProductRepository
}

func NewListProductsUseCase(productRepo repository.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}
