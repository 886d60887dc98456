package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	cart, err := h.deps.Carts.Get(c.Request.Context(), sid)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// addCartItem resolves the product from the catalog now; the cart engine
// freezes the effective price it sees at this instant.
func (h *handlers) addCartItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var in addCartItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	p, err := h.deps.Catalog.Get(c.Request.Context(), in.ProductID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	cart, err := h.deps.Carts.Add(c.Request.Context(), sid, *p, in.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *handlers) setCartItemQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var in setQuantityRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cart, err := h.deps.Carts.SetQuantity(c.Request.Context(), sid, c.Param("productId"), in.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	cart, err := h.deps.Carts.Remove(c.Request.Context(), sid, c.Param("productId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *handlers) clearCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.deps.Carts.Clear(c.Request.Context(), sid); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
