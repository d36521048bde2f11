package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

type CreateProductInput struct {
	Name  string
	Price decimal.Decimal
}

type CreateProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewCreateProductUseCase(productRepo repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	product, err := entity.NewProduct(input.Name, input.Price)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to create product")
	}

	logger.Log.WithField("product_id", product.ID).Info("product created")

	return product, nil
}
