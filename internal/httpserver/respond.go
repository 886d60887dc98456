package httpserver

import (
	"errors"
	"log"
	"net/http"

	"biltone-supplies/internal/domain"
	authsvc "biltone-supplies/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

// respondError maps known failures to statuses. Anything unrecognized is a
// 500 with the detail kept in the log, not the response.
func (h *handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, authsvc.ErrPendingApproval):
		c.JSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
	case errors.Is(err, authsvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
	default:
		h.logger.Printf("http: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// respondInputError is for calls whose failures are usually caused by the
// request body: sentinels map as usual, everything else is echoed as a 422.
func (h *handlers) respondInputError(c *gin.Context, err error) {
	if isSentinel(err) {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func isSentinel(err error) bool {
	for _, known := range []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrEmptyCart,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidStatus,
		authsvc.ErrInvalidCredentials,
		authsvc.ErrPendingApproval,
		authsvc.ErrInvalidToken,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

// sessionID extracts the per-device cart identifier. Cart routes refuse to
// guess one; the front end generates and sticks to it.
func sessionID(c *gin.Context) (string, bool) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return "", false
	}
	return sid, true
}
