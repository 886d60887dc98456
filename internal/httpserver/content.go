package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) getContent(c *gin.Context) {
	block, err := h.deps.Content.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

type saveContentRequest struct {
	HTML string `json:"html" binding:"required"`
}

func (h *handlers) saveContent(c *gin.Context) {
	var in saveContentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	block, err := h.deps.Content.Save(c.Request.Context(), c.Param("key"), in.HTML)
	if err != nil {
		h.respondInputError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}
