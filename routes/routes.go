package routes

import (
	"github.com/diozenio/ecommerce-app-backend/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// Accounts
	r.POST("/login", h.Login)
	r.POST("/signup", h.Signup)

	// Catalog
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id", h.GetCategory)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)

	// Orders & delivery
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrderStatus)
	r.GET("/orders/:id/track", h.TrackOrder)
	r.GET("/taxes", h.GetTaxes)

	// Images
	r.GET("/images/:id", h.GetImage)
}
