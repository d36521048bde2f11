package dto

import (
	"github.com/lukegor/price-negotiation-backend/internal/models"
	"github.com/lukegor/price-negotiation-backend/internal/service"
)

// ErrorResponse is the uniform error envelope for the auth endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse wraps a message together with optional payload.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse bundles the account with its freshly issued tokens.
type AuthResponse struct {
	User   *models.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}
