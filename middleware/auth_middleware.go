package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"linkup/internal/auth"
)

// ContextUserID is the gin context key the authenticated user id is stored
// under for downstream handlers.
const ContextUserID = "user_id"

// Auth guards protected routes. It extracts the bearer token, rejects
// blacklisted or invalid tokens with 401 before any handler runs, and puts
// the resolved user id into the request context. store may be nil when no
// logout blacklist is wired (tests).
func Auth(tm *auth.TokenManager, store auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if store != nil {
			if in, _ := store.InBlacklist(c.Request.Context(), token); in {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
				return
			}
		}

		claims, err := tm.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID pulls the authenticated user id set by Auth out of the context.
func UserID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextUserID)
	uid, _ := id.(uint64)
	return uid
}
