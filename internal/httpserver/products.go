package httpserver

import (
	"net/http"

	"biltone-supplies/internal/domain"
	catalogsvc "biltone-supplies/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

// listProducts serves the storefront catalog. A failing read degrades to an
// empty list with a warning instead of a 5xx, so the shop front still loads.
func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.Catalog.List(c.Request.Context())
	if err != nil {
		h.logger.Printf("http: product list degraded to empty: %v", err)
		c.JSON(http.StatusOK, gin.H{"products": []domain.Product{}, "warning": "catalog temporarily unavailable"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) saveProduct(c *gin.Context) {
	var in catalogsvc.SaveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := h.deps.Catalog.Save(c.Request.Context(), in)
	if err != nil {
		h.respondInputError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
