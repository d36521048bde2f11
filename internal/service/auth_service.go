package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/models"
	"github.com/lukegor/price-negotiation-backend/internal/repository"
	"github.com/lukegor/price-negotiation-backend/internal/validation"
)

// AuthRepository describes what AuthService needs from the storage layer.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthService encapsulates registration and authentication logic.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// RegisterInput carries new-account data.
type RegisterInput struct {
	Email    string
	Password string
	Username string
	Role     string
}

// LoginInput carries credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is the outcome of registration or login.
type AuthResult struct {
	User      *models.User
	TokenPair *TokenPair
}

func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Register creates a new account. Self-registered accounts are always
// customers; staff and admin accounts are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	if _, err := s.repo.GetByEmail(ctx, strings.ToLower(in.Email)); err == nil {
		return nil, fmt.Errorf("auth service: email is already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	username := in.Username
	if username == "" {
		username = deriveUsername(in.Email)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer {
		return nil, fmt.Errorf("auth service: only customer accounts can self-register")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(in.Email),
		Username:     username,
		PasswordHash: string(passHash),
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokenPair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("user registered")

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("auth service: invalid credentials")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("auth service: account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("auth service: invalid credentials")
	}

	tokenPair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.tokenManager.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("auth service: invalid refresh token")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth service: invalid refresh token")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("auth service: account is deactivated")
	}

	tokenPair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// deriveUsername builds a username from the email's local part.
func deriveUsername(email string) string {
	local := email
	if idx := strings.Index(email, "@"); idx > 0 {
		local = email[:idx]
	}
	local = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		}
		return '_'
	}, local)
	if len(local) < validation.MinUsernameLength {
		local = local + "_user"
	}
	return local
}
