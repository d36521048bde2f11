package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
	"github.com/lukegor/price-negotiation-backend/internal/repository"
)

// ErrorHandler turns errors attached to the gin context into JSON responses,
// masking internals behind a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		logger.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("request error")

		statusCode := http.StatusInternalServerError
		message := "internal server error"

		var appErr *apperror.AppError
		switch {
		case errors.As(err.Err, &appErr):
			statusCode = appErr.HTTPStatus
			message = appErr.Message
		case errors.Is(err.Err, repository.ErrUserNotFound):
			statusCode = http.StatusNotFound
			message = "user not found"
		}

		c.JSON(statusCode, gin.H{"error": message})
	}
}
