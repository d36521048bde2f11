package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/valueobject"
)

func TestNewNegotiation(t *testing.T) {
	productID := uuid.New()
	userID := uuid.New()

	n, err := entity.NewNegotiation(productID, userID, decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.Status != valueobject.NegotiationStatusOpen {
		t.Errorf("expected status open, got %s", n.Status)
	}
	if n.Decision != valueobject.DecisionUndecided {
		t.Errorf("expected decision undecided, got %s", n.Decision)
	}
	if n.RetriesLeft != entity.InitialRetries {
		t.Errorf("expected %d retries, got %d", entity.InitialRetries, n.RetriesLeft)
	}
}

func TestNewNegotiation_InvalidInput(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	if _, err := entity.NewNegotiation(uuid.Nil, userID, decimal.NewFromInt(50)); err == nil {
		t.Error("expected error for nil product id")
	}
	if _, err := entity.NewNegotiation(productID, uuid.Nil, decimal.NewFromInt(50)); err == nil {
		t.Error("expected error for nil user id")
	}
	if _, err := entity.NewNegotiation(productID, userID, decimal.Zero); err == nil {
		t.Error("expected error for zero price")
	}
	if _, err := entity.NewNegotiation(productID, userID, decimal.NewFromInt(-5)); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestNegotiation_ProposeConsumesRetries(t *testing.T) {
	n, _ := entity.NewNegotiation(uuid.New(), uuid.New(), decimal.NewFromInt(50))

	if err := n.Propose(decimal.NewFromInt(60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.RetriesLeft != 1 {
		t.Errorf("expected 1 retry left, got %d", n.RetriesLeft)
	}
	if !n.ProposedPrice.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected proposed price 60, got %s", n.ProposedPrice)
	}

	if err := n.Propose(decimal.NewFromInt(70)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.RetriesLeft != 0 {
		t.Errorf("expected 0 retries left, got %d", n.RetriesLeft)
	}

	if err := n.Propose(decimal.NewFromInt(80)); err == nil {
		t.Error("expected error when retries are exhausted")
	}
	if n.RetriesLeft != 0 {
		t.Errorf("retries must not go below zero, got %d", n.RetriesLeft)
	}
	if !n.ProposedPrice.Equal(decimal.NewFromInt(70)) {
		t.Errorf("refused proposition must not change the price, got %s", n.ProposedPrice)
	}
}

func TestNegotiation_Approve(t *testing.T) {
	n, _ := entity.NewNegotiation(uuid.New(), uuid.New(), decimal.NewFromInt(50))

	if err := n.Approve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Status != valueobject.NegotiationStatusClosed {
		t.Errorf("expected closed status, got %s", n.Status)
	}
	if n.Decision != valueobject.DecisionAccepted {
		t.Errorf("expected accepted decision, got %s", n.Decision)
	}

	if err := n.Approve(); err == nil {
		t.Error("expected error approving a closed negotiation")
	}
}

func TestNegotiation_RejectWithRetriesKeepsOpen(t *testing.T) {
	n, _ := entity.NewNegotiation(uuid.New(), uuid.New(), decimal.NewFromInt(50))

	if err := n.Reject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Status != valueobject.NegotiationStatusOpen {
		t.Errorf("expected negotiation to stay open, got %s", n.Status)
	}
	if n.Decision != valueobject.DecisionUndecided {
		t.Errorf("expected decision to stay undecided, got %s", n.Decision)
	}
	if !n.CanPropose() {
		t.Error("customer must be able to propose again after a non-final rejection")
	}
}

func TestNegotiation_RejectWithoutRetriesCloses(t *testing.T) {
	n, _ := entity.NewNegotiation(uuid.New(), uuid.New(), decimal.NewFromInt(50))
	n.RetriesLeft = 0

	if err := n.Reject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Status != valueobject.NegotiationStatusClosed {
		t.Errorf("expected closed status, got %s", n.Status)
	}
	if n.Decision != valueobject.DecisionRejected {
		t.Errorf("expected rejected decision, got %s", n.Decision)
	}
}

func TestNegotiation_ClosedRejectsEverything(t *testing.T) {
	n, _ := entity.NewNegotiation(uuid.New(), uuid.New(), decimal.NewFromInt(50))
	if err := n.Approve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.CanPropose() {
		t.Error("closed negotiation must not accept propositions")
	}
	if err := n.Reject(); err == nil {
		t.Error("expected error rejecting a closed negotiation")
	}
}

func TestNegotiation_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	n, _ := entity.NewNegotiation(uuid.New(), owner, decimal.NewFromInt(50))

	if !n.IsOwnedBy(owner) {
		t.Error("expected ownership for creator")
	}
	if n.IsOwnedBy(uuid.New()) {
		t.Error("expected no ownership for stranger")
	}
}
