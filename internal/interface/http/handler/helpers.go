package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/http/middleware"
)

func getUserID(c *gin.Context) (uuid.UUID, error) {
	userIDValue, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, errors.New("user id missing from context")
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user id has unexpected type")
	}

	return userID, nil
}

func getUserRole(c *gin.Context) string {
	roleValue, exists := c.Get(middleware.ContextRoleKey)
	if !exists {
		return ""
	}

	role, ok := roleValue.(string)
	if !ok {
		return ""
	}

	return role
}
