package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/valueobject"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

// InitialRetries is the retry budget a fresh negotiation starts with. A
// negotiation nominally allows three price propositions; the price supplied
// at creation consumes the first, leaving two retries.
const InitialRetries = 2

// Negotiation tracks one customer's price bargaining process for one product.
// RetriesLeft stays within [0, InitialRetries] and only ever decreases.
// Version is the optimistic concurrency token managed by the store.
type Negotiation struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	UserID        uuid.UUID
	ProposedPrice decimal.Decimal
	Decision      valueobject.Decision
	RetriesLeft   int
	Status        valueobject.NegotiationStatus
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewNegotiation(productID, userID uuid.UUID, proposedPrice decimal.Decimal) (*Negotiation, error) {
	if productID == uuid.Nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "product id is required")
	}
	if userID == uuid.Nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "user id is required")
	}
	if !proposedPrice.IsPositive() {
		return nil, apperror.New(apperror.ErrCodeValidation, "proposed price must be positive")
	}

	now := time.Now()
	return &Negotiation{
		ID:            uuid.New(),
		ProductID:     productID,
		UserID:        userID,
		ProposedPrice: proposedPrice,
		Decision:      valueobject.DecisionUndecided,
		RetriesLeft:   InitialRetries,
		Status:        valueobject.NegotiationStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CanPropose reports whether another price proposition is permitted. Closure
// is terminal for negotiation content, so a closed negotiation never accepts
// a proposal regardless of its remaining retries.
func (n *Negotiation) CanPropose() bool {
	return n.Status == valueobject.NegotiationStatusOpen && n.RetriesLeft > 0
}

// Propose replaces the active proposed price, consuming one retry. The caller
// validates the price against the product's list price bound beforehand.
func (n *Negotiation) Propose(price decimal.Decimal) error {
	if !n.CanPropose() {
		return apperror.New(apperror.ErrCodeBadRequest, "no more price propositions are permitted for this negotiation")
	}
	if !price.IsPositive() {
		return apperror.New(apperror.ErrCodeValidation, "proposed price must be positive")
	}

	n.RetriesLeft--
	n.ProposedPrice = price
	n.UpdatedAt = time.Now()
	return nil
}

// Approve closes the negotiation with the current proposed price accepted.
func (n *Negotiation) Approve() error {
	if !n.Status.CanTransitionTo(valueobject.NegotiationStatusClosed) {
		return apperror.New(apperror.ErrCodeBadRequest, "only an open negotiation can be resolved")
	}
	n.Decision = valueobject.DecisionAccepted
	n.Status = valueobject.NegotiationStatusClosed
	n.UpdatedAt = time.Now()
	return nil
}

// Reject turns down the current proposed price. The negotiation closes only
// when the retry budget is exhausted; otherwise it stays open and the
// customer may propose again.
func (n *Negotiation) Reject() error {
	if !n.Status.CanTransitionTo(valueobject.NegotiationStatusClosed) {
		return apperror.New(apperror.ErrCodeBadRequest, "only an open negotiation can be resolved")
	}
	if n.RetriesLeft <= 0 {
		n.Decision = valueobject.DecisionRejected
		n.Status = valueobject.NegotiationStatusClosed
	}
	n.UpdatedAt = time.Now()
	return nil
}

func (n *Negotiation) IsClosed() bool {
	return n.Status == valueobject.NegotiationStatusClosed
}

func (n *Negotiation) IsOwnedBy(userID uuid.UUID) bool {
	return n.UserID == userID
}
