package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lukegor/price-negotiation-backend/internal/models"
	"github.com/lukegor/price-negotiation-backend/internal/repository"
)

type mockAuthRepository struct {
	usersByEmail map[string]*models.User
	usersByID    map[uuid.UUID]*models.User
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		usersByEmail: make(map[string]*models.User),
		usersByID:    make(map[uuid.UUID]*models.User),
	}
}

func (m *mockAuthRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true
	m.usersByEmail[user.Email] = user
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockAuthRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := m.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := m.usersByID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func newTestTokenManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockAuthRepository()
	svc := NewAuthService(repo, newTestTokenManager())

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "buyer@example.com",
		Password: "secret1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.Role != models.RoleCustomer {
		t.Errorf("expected customer role, got %s", result.User.Role)
	}
	if result.User.Username != "buyer" {
		t.Errorf("expected derived username buyer, got %s", result.User.Username)
	}
	if result.TokenPair.AccessToken == "" || result.TokenPair.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newMockAuthRepository()
	svc := NewAuthService(repo, newTestTokenManager())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "buyer@example.com", Password: "secret1234"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "buyer@example.com", Password: "secret1234"}); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

func TestAuthService_Register_RejectsElevatedRole(t *testing.T) {
	svc := NewAuthService(newMockAuthRepository(), newTestTokenManager())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "intruder@example.com",
		Password: "secret1234",
		Role:     models.RoleAdmin,
	})
	if err == nil {
		t.Fatal("expected error when self-registering as admin")
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockAuthRepository()
	svc := NewAuthService(repo, newTestTokenManager())

	passHash, _ := bcrypt.GenerateFromPassword([]byte("secret1234"), bcrypt.DefaultCost)
	user := &models.User{
		Email:        "buyer@example.com",
		Username:     "buyer",
		PasswordHash: string(passHash),
		Role:         models.RoleCustomer,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Login(context.Background(), LoginInput{Email: "buyer@example.com", Password: "secret1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, result.User.ID)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "buyer@example.com", Password: "wrong"}); err == nil {
		t.Fatal("expected error for wrong password")
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret1234"}); err == nil {
		t.Fatal("expected error for unknown email")
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newMockAuthRepository()
	svc := NewAuthService(repo, newTestTokenManager())

	registered, err := svc.Register(context.Background(), RegisterInput{Email: "buyer@example.com", Password: "secret1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), registered.TokenPair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.User.ID != registered.User.ID {
		t.Errorf("expected user %s, got %s", registered.User.ID, refreshed.User.ID)
	}

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err == nil {
		t.Fatal("expected error for malformed refresh token")
	}
	if _, err := svc.Refresh(context.Background(), registered.TokenPair.AccessToken); err == nil {
		t.Fatal("expected error when an access token is used as refresh token")
	}
}
