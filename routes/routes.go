package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/glowishii/ecommerce-api/controllers/order"
	"github.com/glowishii/ecommerce-api/otp"
)

// SetupRoutes is the single entry-point that wires up the auth, user, order
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, otpSvc *otp.Service) {
	hub := orderControllers.NewHub()

	// Public auth + catalog routes (no middleware)
	SetupAuthRoutes(r, db, otpSvc)

	// JWT-protected user routes
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected, websocket feed for admins)
	SetupOrderRoutes(r, db, hub)

	// Admin routes (JWT + admin flag)
	SetupAdminRoutes(r, db, hub)
}
