package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
)

// NegotiationRepository is the store contract the lifecycle use cases depend
// on. Update fails with apperror.ErrConcurrencyConflict when the store
// detects a simultaneous conflicting write; the use cases surface that as a
// conflict result rather than retrying or merging.
type NegotiationRepository interface {
	Create(ctx context.Context, negotiation *entity.Negotiation) error
	Update(ctx context.Context, negotiation *entity.Negotiation) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Negotiation, error)
	List(ctx context.Context) ([]*entity.Negotiation, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Negotiation, error)
}
