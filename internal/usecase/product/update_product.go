package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

type UpdateOutcome int

const (
	UpdateSuccess UpdateOutcome = iota
	UpdateNotFound
	UpdateConflict
)

type UpdateProductInput struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
}

type UpdateProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewUpdateProductUseCase(productRepo repository.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute rewrites the catalog entry. A concurrent conflicting write detected
// by the store maps to UpdateConflict.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (UpdateOutcome, *entity.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return UpdateNotFound, nil, nil
		}
		return UpdateConflict, nil, err
	}

	if err := product.Rename(input.Name); err != nil {
		return UpdateConflict, nil, err
	}
	if err := product.Reprice(input.Price); err != nil {
		return UpdateConflict, nil, err
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		if apperror.IsConflict(err) {
			return UpdateConflict, nil, nil
		}
		return UpdateConflict, nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update product")
	}

	return UpdateSuccess, product, nil
}
