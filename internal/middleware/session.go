package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartcarbon/internal/domain"
)

const (
	// ParamSessionID is the route parameter carrying the session ID.
	ParamSessionID = "session_id"
	// ContextKeySessionID is the gin context key holding the parsed session ID.
	ContextKeySessionID = "session_id"
)

// SessionContext parses the :session_id route parameter and stores it in the
// gin context. Malformed IDs are rejected with 400.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param(ParamSessionID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_SESSION_ID", "message": "invalid session ID"},
			})
			return
		}
		c.Set(ContextKeySessionID, id)
		c.Next()
	}
}

// GetSessionID extracts the session ID from the Gin context.
func GetSessionID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeySessionID)
	if !exists {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return id, nil
}
