package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/glowishii/ecommerce-api/controllers/order"
	"github.com/glowishii/ecommerce-api/middleware"
)

// SetupOrderRoutes registers the user-facing order endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, hub *orderControllers.Hub) {
	orders := r.Group("/")
	orders.Use(middleware.UserAuth(db))
	{
		orders.POST("/order", orderControllers.PlaceOrderHandler(db, hub))
		orders.GET("/orders", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/orders/:id", orderControllers.GetOrderByIDHandler(db))
	}
}
