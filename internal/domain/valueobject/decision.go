package valueobject

import "github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"

// Decision is the staff verdict on a negotiation's proposed price. It stays
// Undecided for as long as the negotiation is open.
type Decision string

const (
	DecisionUndecided Decision = "undecided"
	DecisionAccepted  Decision = "accepted"
	DecisionRejected  Decision = "rejected"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionUndecided, DecisionAccepted, DecisionRejected:
		return true
	}
	return false
}

func (d Decision) IsDecided() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

func NewDecision(decision string) (Decision, error) {
	d := Decision(decision)
	if !d.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "invalid negotiation decision")
	}
	return d, nil
}
