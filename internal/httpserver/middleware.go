package httpserver

import (
	"net/http"
	"strings"

	"biltone-supplies/internal/domain"
	"github.com/gin-gonic/gin"
)

const userCtxKey = "currentUser"

// requireUser resolves the Bearer token to an approved back-office user and
// stores it on the gin context.
func (h *handlers) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}
		u, err := h.deps.Auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set(userCtxKey, u)
		c.Next()
	}
}

// requireRole gates a route group on the resolved user's role. Must run
// after requireUser.
func (h *handlers) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil || u.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
