package negotiation

import (
	"context"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
)

type GetNegotiationUseCase struct {
	negotiationRepo repository.NegotiationRepository
}

func NewGetNegotiationUseCase(negotiationRepo repository.NegotiationRepository) *GetNegotiationUseCase {
	return &GetNegotiationUseCase{negotiationRepo: negotiationRepo}
}

// Execute returns the negotiation or apperror.ErrNegotiationNotFound, so
// callers can tell "does not exist" apart from an empty result.
func (uc *GetNegotiationUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Negotiation, error) {
	return uc.negotiationRepo.FindByID(ctx, id)
}

type ListNegotiationsUseCase struct {
	negotiationRepo repository.NegotiationRepository
}

func NewListNegotiationsUseCase(negotiationRepo repository.NegotiationRepository) *ListNegotiationsUseCase {
	return &ListNegotiationsUseCase{negotiationRepo: negotiationRepo}
}

func (uc *ListNegotiationsUseCase) Execute(ctx context.Context) ([]*entity.Negotiation, error) {
	return uc.negotiationRepo.List(ctx)
}

// ExecuteForUser restricts the listing to negotiations owned by one customer.
func (uc *ListNegotiationsUseCase) ExecuteForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Negotiation, error) {
	return uc.negotiationRepo.ListByUserID(ctx, userID)
}
