package httpserver

import (
	"log"

	"biltone-supplies/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the storefront and the admin back office.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Session-ID")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")

	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/content/:key", h.getContent)
	api.POST("/contact", h.createMessage)

	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addCartItem)
	api.PATCH("/cart/items/:productId", h.setCartItemQuantity)
	api.DELETE("/cart/items/:productId", h.removeCartItem)
	api.DELETE("/cart", h.clearCart)
	api.POST("/checkout", h.checkout)

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)

	authed := api.Group("")
	authed.Use(h.requireUser())
	authed.GET("/auth/me", h.me)
	authed.POST("/auth/logout", h.logout)
	authed.POST("/profile/update-request", h.requestProfileUpdate)

	admin := api.Group("/admin")
	admin.Use(h.requireUser())
	admin.POST("/products", h.saveProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	admin.GET("/orders", h.listOrders)
	admin.GET("/orders/:id", h.getOrder)
	admin.PUT("/orders/:id/status", h.setOrderStatus)
	admin.GET("/messages", h.listMessages)
	admin.POST("/messages/:id/read", h.markMessageRead)
	admin.PUT("/content/:key", h.saveContent)

	owner := admin.Group("")
	owner.Use(h.requireRole(domain.RoleOwner))
	owner.POST("/users/:email/approve", h.approveUser)
	owner.GET("/profile-updates", h.listPendingUpdates)
	owner.POST("/profile-updates/:id/approve", h.approveProfileUpdate)
	owner.POST("/profile-updates/:id/reject", h.rejectProfileUpdate)

	return router
}
