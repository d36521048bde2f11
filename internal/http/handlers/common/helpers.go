package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/dto"
	"github.com/lukegor/price-negotiation-backend/internal/http/middleware"
)

var (
	// ErrUserNotInContext is returned when no authenticated user is attached
	// to the request context.
	ErrUserNotInContext = errors.New("user not found in request context")

	// ErrInvalidUUID is returned when UUID parsing fails.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// CurrentUserID extracts the authenticated user's ID from the Gin context.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, ErrUserNotInContext
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrUserNotInContext
	}

	return userID, nil
}

// CurrentUserRole extracts the authenticated user's role from the Gin context.
func CurrentUserRole(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextRoleKey)
	if !exists {
		return "", ErrUserNotInContext
	}

	role, ok := raw.(string)
	if !ok {
		return "", ErrUserNotInContext
	}

	return role, nil
}

// ParseUUIDParam parses a UUID from a URL parameter.
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	param := c.Param(paramName)
	if param == "" {
		return uuid.Nil, fmt.Errorf("missing %s parameter", paramName)
	}

	parsed, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}

// RespondError sends a standardized error response.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// RespondUnauthorized sends a 401 Unauthorized response.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authorization required"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondBadRequest sends a 400 Bad Request response.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}
	RespondError(c, http.StatusBadRequest, message)
}

// RespondInternalError sends a 500 Internal Server Error response.
func RespondInternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	RespondError(c, http.StatusInternalServerError, message)
}
