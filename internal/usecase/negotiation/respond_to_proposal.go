package negotiation

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lukegor/price-negotiation-backend/internal/domain/repository"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

type RespondOutcome int

const (
	RespondSuccess RespondOutcome = iota
	RespondNotFound
	RespondIncorrectAction
	RespondConflict
)

// Notifier pushes negotiation events to connected clients. A nil notifier
// disables notifications.
type Notifier interface {
	BroadcastToUser(userID uuid.UUID, event string, data interface{}) error
}

type RespondToProposalUseCase struct {
	negotiationRepo repository.NegotiationRepository
	notifier        Notifier
}

func NewRespondToProposalUseCase(negotiationRepo repository.NegotiationRepository, notifier Notifier) *RespondToProposalUseCase {
	return &RespondToProposalUseCase{
		negotiationRepo: negotiationRepo,
		notifier:        notifier,
	}
}

// Execute records a staff decision on the currently proposed price. Approval
// closes the negotiation with the price accepted. A rejection closes it only
// when the retry budget is exhausted; otherwise the negotiation stays open
// and the customer may propose again. A concurrent conflicting write detected
// by the store maps to RespondConflict; resolving it is the caller's job.
func (uc *RespondToProposalUseCase) Execute(ctx context.Context, negotiationID uuid.UUID, isApproved bool) (RespondOutcome, error) {
	negotiation, err := uc.negotiationRepo.FindByID(ctx, negotiationID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return RespondNotFound, nil
		}
		return RespondConflict, err
	}

	if negotiation.IsClosed() {
		logger.Log.WithField("negotiation_id", negotiationID).Warn("response refused: negotiation already closed")
		return RespondIncorrectAction, nil
	}

	if isApproved {
		if err := negotiation.Approve(); err != nil {
			return RespondIncorrectAction, nil
		}
	} else {
		if err := negotiation.Reject(); err != nil {
			return RespondIncorrectAction, nil
		}
	}

	if err := uc.negotiationRepo.Update(ctx, negotiation); err != nil {
		if apperror.IsConflict(err) {
			return RespondConflict, nil
		}
		return RespondConflict, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update negotiation")
	}

	logger.Log.WithFields(logrus.Fields{
		"negotiation_id": negotiationID,
		"approved":       isApproved,
		"status":         string(negotiation.Status),
	}).Info("proposal response recorded")

	if uc.notifier != nil {
		payload := map[string]interface{}{
			"negotiation_id": negotiation.ID,
			"status":         string(negotiation.Status),
			"decision":       string(negotiation.Decision),
			"retries_left":   negotiation.RetriesLeft,
		}
		if err := uc.notifier.BroadcastToUser(negotiation.UserID, "negotiation.responded", payload); err != nil {
			logger.Log.WithField("negotiation_id", negotiationID).Warnf("failed to notify customer: %v", err)
		}
	}

	return RespondSuccess, nil
}
