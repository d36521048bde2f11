package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lukegor/price-negotiation-backend/internal/dto"
	"github.com/lukegor/price-negotiation-backend/internal/http/handlers/common"
	"github.com/lukegor/price-negotiation-backend/internal/service"
	"github.com/lukegor/price-negotiation-backend/internal/validation"
)

// AuthHandler is the HTTP layer for registration, login and token refresh.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register. Self-registration always produces a
// customer account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "invalid request body")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if req.Username != "" {
		if err := validation.ValidateUsername(req.Username); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:   result.User,
		Tokens: result.TokenPair,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "invalid request body")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if strings.TrimSpace(req.Password) == "" {
		common.RespondBadRequest(c, "password is required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		common.RespondUnauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:   result.User,
		Tokens: result.TokenPair,
	})
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		common.RespondUnauthorized(c, "invalid refresh token")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:   result.User,
		Tokens: result.TokenPair,
	})
}
