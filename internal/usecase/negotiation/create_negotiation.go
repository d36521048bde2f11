package negotiation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

type CreateNegotiationInput struct {
	ProductID     uuid.UUID
	UserID        uuid.UUID
	ProposedPrice decimal.Decimal
}

type CreateNegotiationUseCase struct {
	negotiationRepo repository.NegotiationRepository
	productRepo     repository.ProductRepository
}

func NewCreateNegotiationUseCase(negotiationRepo repository.NegotiationRepository, productRepo repository.ProductRepository) *CreateNegotiationUseCase {
	return &CreateNegotiationUseCase{
		negotiationRepo: negotiationRepo,
		productRepo:     productRepo,
	}
}

// Execute opens a negotiation for the given product with the customer's
// initial price proposition. A missing product surfaces unchanged as the
// catalog's not-found error.
func (uc *CreateNegotiationUseCase) Execute(ctx context.Context, input CreateNegotiationInput) (*entity.Negotiation, error) {
	if _, err := uc.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	negotiation, err := entity.NewNegotiation(input.ProductID, input.UserID, input.ProposedPrice)
	if err != nil {
		return nil, err
	}

	if err := uc.negotiationRepo.Create(ctx, negotiation); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to create negotiation")
	}

	logger.Log.WithField("negotiation_id", negotiation.ID).Info("negotiation created")

	return negotiation, nil
}
