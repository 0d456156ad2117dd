package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mizutani-dev/teamtrack-api/internal/constants"
	apierrors "github.com/mizutani-dev/teamtrack-api/internal/errors"
)

// RequireAuth checks if the worker is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		workerID := session.Get(constants.ContextKeyUserID)

		if workerID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store worker ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, workerID)
		c.Next()
	}
}

// GetWorkerID retrieves the current worker ID from context
func GetWorkerID(c *gin.Context) (uint64, bool) {
	workerID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := workerID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
