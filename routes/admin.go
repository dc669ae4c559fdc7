package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/glowishii/ecommerce-api/controllers/order"
	productcontroller "github.com/glowishii/ecommerce-api/controllers/product"
	"github.com/glowishii/ecommerce-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the JWT
// middleware plus the admin flag.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, hub *orderControllers.Hub) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.UserAuth(db), middleware.UserAdmin)
	{
		// ─────────── Product Management ───────────
		adminGroup.POST("/products", productcontroller.CreateProduct(db))
		adminGroup.PATCH("/products/:id", productcontroller.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(db))

		// ─────────── Order Management ───────────
		adminGroup.GET("/allOrders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PATCH("/order/:id", orderControllers.UpdateOrderStatusHandler(db, hub))
		adminGroup.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(db))

		// websocket endpoint for real-time order updates
		adminGroup.GET("/orders/ws", hub.OrderWebSocketHandler)
	}
}
