package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
)

type DeleteProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewDeleteProductUseCase(productRepo repository.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		logger.Log.WithField("product_id", id).Info("product deleted")
	}
	return deleted, nil
}
