package negotiation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

// priceMultiplier caps a counter-proposition relative to the product's list
// price, leaving real negotiation room while cutting off pathological inputs.
const priceMultiplier = 2

type ProposeOutcome int

const (
	ProposeSuccess ProposeOutcome = iota
	ProposeNotFound
	ProposeIncorrectAction
	ProposeInvalidInput
	ProposeError
)

// ProposeResult carries the outcome of a price proposition. MaxAllowedPrice
// is populated on ProposeInvalidInput so the caller can report the valid
// range.
type ProposeResult struct {
	Outcome         ProposeOutcome
	MaxAllowedPrice decimal.Decimal
}

type ProposeNewPriceUseCase struct {
	negotiationRepo repository.NegotiationRepository
	productRepo     repository.ProductRepository
}

func NewProposeNewPriceUseCase(negotiationRepo repository.NegotiationRepository, productRepo repository.ProductRepository) *ProposeNewPriceUseCase {
	return &ProposeNewPriceUseCase{
		negotiationRepo: negotiationRepo,
		productRepo:     productRepo,
	}
}

// Execute applies a counter-price proposition. Checks run in order and each
// terminates the call: negotiation exists, ownership, retry budget, price
// bound against the product's list price at proposal time. Exactly one store
// write happens on the success path and none on any rejection path.
func (uc *ProposeNewPriceUseCase) Execute(ctx context.Context, negotiationID, userID uuid.UUID, proposedPrice decimal.Decimal) (ProposeResult, error) {
	negotiation, err := uc.negotiationRepo.FindByID(ctx, negotiationID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return ProposeResult{Outcome: ProposeNotFound}, nil
		}
		return ProposeResult{Outcome: ProposeError}, err
	}

	if !negotiation.IsOwnedBy(userID) {
		return ProposeResult{}, apperror.ErrForbidden
	}

	if !negotiation.CanPropose() {
		logger.Log.WithField("negotiation_id", negotiationID).Warn("price proposition refused: no retries left or negotiation closed")
		return ProposeResult{Outcome: ProposeIncorrectAction}, nil
	}

	product, err := uc.productRepo.FindByID(ctx, negotiation.ProductID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return ProposeResult{Outcome: ProposeNotFound}, nil
		}
		return ProposeResult{Outcome: ProposeError}, err
	}

	// The bound is evaluated against the product's current list price every
	// time, not cached on the negotiation.
	maxAllowed := product.Price.Mul(decimal.NewFromInt(priceMultiplier))
	if !proposedPrice.IsPositive() || proposedPrice.GreaterThan(maxAllowed) {
		logger.Log.WithFields(logrus.Fields{
			"negotiation_id": negotiationID,
			"proposed_price": proposedPrice.String(),
			"max_allowed":    maxAllowed.String(),
		}).Warn("price proposition refused: out of bounds")
		return ProposeResult{Outcome: ProposeInvalidInput, MaxAllowedPrice: maxAllowed}, nil
	}

	if err := negotiation.Propose(proposedPrice); err != nil {
		return ProposeResult{Outcome: ProposeIncorrectAction}, nil
	}

	if err := uc.negotiationRepo.Update(ctx, negotiation); err != nil {
		return ProposeResult{Outcome: ProposeError}, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update negotiation")
	}

	logger.Log.WithFields(logrus.Fields{
		"negotiation_id": negotiationID,
		"retries_left":   negotiation.RetriesLeft,
	}).Info("new price proposed")

	return ProposeResult{Outcome: ProposeSuccess}, nil
}
