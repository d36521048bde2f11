package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/models"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := newTestTokenManager()
	user := &models.User{ID: uuid.New(), Role: models.RoleStaff}

	pair, err := tm.GeneratePair(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, role, err := tm.ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != user.ID {
		t.Errorf("expected user id %s, got %s", user.ID, userID)
	}
	if role != models.RoleStaff {
		t.Errorf("expected role staff, got %s", role)
	}

	refreshID, err := tm.ParseRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshID != user.ID {
		t.Errorf("expected user id %s, got %s", user.ID, refreshID)
	}
}

func TestTokenManager_RejectsCrossTokenUse(t *testing.T) {
	tm := newTestTokenManager()
	user := &models.User{ID: uuid.New(), Role: models.RoleCustomer}

	pair, err := tm.GeneratePair(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := tm.ParseAccess(pair.RefreshToken); err == nil {
		t.Error("expected error parsing refresh token as access token")
	}
	if _, err := tm.ParseRefresh(pair.AccessToken); err == nil {
		t.Error("expected error parsing access token as refresh token")
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	user := &models.User{ID: uuid.New(), Role: models.RoleCustomer}

	pair, err := tm.GeneratePair(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := tm.ParseAccess(pair.AccessToken); err == nil {
		t.Error("expected error for expired access token")
	}
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	tm := newTestTokenManager()
	other := NewTokenManager("other-secret", "other-refresh", 15*time.Minute, 24*time.Hour)
	user := &models.User{ID: uuid.New(), Role: models.RoleCustomer}

	pair, err := other.GeneratePair(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := tm.ParseAccess(pair.AccessToken); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}
