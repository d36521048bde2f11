package negotiation

import (
	"context"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
)

type DeleteNegotiationUseCase struct {
	negotiationRepo repository.NegotiationRepository
}

func NewDeleteNegotiationUseCase(negotiationRepo repository.NegotiationRepository) *DeleteNegotiationUseCase {
	return &DeleteNegotiationUseCase{negotiationRepo: negotiationRepo}
}

// Execute removes the negotiation unconditionally. A missing negotiation is a
// normal false outcome, not an error.
func (uc *DeleteNegotiationUseCase) Execute(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := uc.negotiationRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		logger.Log.WithField("negotiation_id", id).Info("negotiation deleted")
	}
	return deleted, nil
}
