package httpserver

import (
	"net/http"
	"strings"

	authsvc "biltone-supplies/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	u, token, err := h.deps.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *handlers) register(c *gin.Context) {
	var in authsvc.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	u, err := h.deps.Auth.Register(c.Request.Context(), in)
	if err != nil {
		h.respondInputError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "note": "account pending approval"})
}

func (h *handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (h *handlers) logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if err := h.deps.Auth.Logout(c.Request.Context(), token); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type profileUpdateRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *handlers) requestProfileUpdate(c *gin.Context) {
	u := currentUser(c)
	var in profileUpdateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	upd, err := h.deps.Auth.RequestProfileUpdate(c.Request.Context(), u.Email, in.Name)
	if err != nil {
		h.respondInputError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, upd)
}

func (h *handlers) approveUser(c *gin.Context) {
	if err := h.deps.Auth.Approve(c.Request.Context(), c.Param("email")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listPendingUpdates(c *gin.Context) {
	updates, err := h.deps.Auth.ListPendingUpdates(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

func (h *handlers) approveProfileUpdate(c *gin.Context) {
	if err := h.deps.Auth.ApproveProfileUpdate(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) rejectProfileUpdate(c *gin.Context) {
	if err := h.deps.Auth.RejectProfileUpdate(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
