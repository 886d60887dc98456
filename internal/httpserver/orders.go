package httpserver

import (
	"net/http"

	"biltone-supplies/internal/domain"
	ordersvc "biltone-supplies/internal/service/order"
	"github.com/gin-gonic/gin"
)

func (h *handlers) checkout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var in ordersvc.PlaceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	o, err := h.deps.Orders.Place(c.Request.Context(), sid, in)
	if err != nil {
		h.respondInputError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order":        o,
		"totalDisplay": formatKES(o.TotalCents),
	})
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.Orders.List(c.Request.Context())
	if err != nil {
		h.logger.Printf("http: order list degraded to empty: %v", err)
		c.JSON(http.StatusOK, gin.H{"orders": []domain.Order{}, "warning": "orders temporarily unavailable"})
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *handlers) getOrder(c *gin.Context) {
	o, err := h.deps.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) setOrderStatus(c *gin.Context) {
	var in setStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.deps.Orders.SetStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
