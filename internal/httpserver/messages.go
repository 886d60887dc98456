package httpserver

import (
	"net/http"

	"biltone-supplies/internal/domain"
	messagesvc "biltone-supplies/internal/service/message"
	"github.com/gin-gonic/gin"
)

func (h *handlers) createMessage(c *gin.Context) {
	var in messagesvc.SaveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	m, err := h.deps.Messages.Save(c.Request.Context(), in)
	if err != nil {
		h.respondInputError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *handlers) listMessages(c *gin.Context) {
	messages, err := h.deps.Messages.List(c.Request.Context())
	if err != nil {
		h.logger.Printf("http: message list degraded to empty: %v", err)
		c.JSON(http.StatusOK, gin.H{"messages": []domain.Message{}, "warning": "inbox temporarily unavailable"})
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *handlers) markMessageRead(c *gin.Context) {
	if err := h.deps.Messages.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
