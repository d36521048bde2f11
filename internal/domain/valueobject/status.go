package valueobject

import "github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"

type NegotiationStatus string

const (
	NegotiationStatusOpen     NegotiationStatus = "open"
	NegotiationStatusClosed   NegotiationStatus = "closed"
	NegotiationStatusArchived NegotiationStatus = "archived"
)

func (s NegotiationStatus) IsValid() bool {
	switch s {
	case NegotiationStatusOpen, NegotiationStatusClosed, NegotiationStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle permits moving to newStatus.
// Archiving happens only through external housekeeping, never here, so the
// only transition the core produces is open -> closed.
func (s NegotiationStatus) CanTransitionTo(newStatus NegotiationStatus) bool {
	transitions := map[NegotiationStatus][]NegotiationStatus{
		NegotiationStatusOpen:     {NegotiationStatusClosed},
		NegotiationStatusClosed:   {},
		NegotiationStatusArchived: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

func NewNegotiationStatus(status string) (NegotiationStatus, error) {
	s := NegotiationStatus(status)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "invalid negotiation status")
	}
	return s, nil
}
