package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/glowishii/ecommerce-api/controllers/cart"
	productcontroller "github.com/glowishii/ecommerce-api/controllers/product"
	uploadControllers "github.com/glowishii/ecommerce-api/controllers/upload"
	userControllers "github.com/glowishii/ecommerce-api/controllers/user"
	"github.com/glowishii/ecommerce-api/middleware"
)

// SetupUserRoutes registers every JWT-protected user-facing endpoint.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.UserAuth(db))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/me", userControllers.GetProfile(db))
		userGroup.PATCH("/updateProfile", userControllers.UpdateProfile(db))
		userGroup.PATCH("/updatePassword", userControllers.UpdatePassword(db))

		// ──────────────── Address Book ────────────────
		userGroup.POST("/address", userControllers.AddAddress(db))
		userGroup.PATCH("/address/:id", userControllers.UpdateAddress(db))
		userGroup.DELETE("/address/:id", userControllers.DeleteAddress(db))
		userGroup.GET("/pincode/:code", userControllers.GetPincode(db))

		// ──────────────── Wishlist ────────────────
		userGroup.POST("/wishlist/:itemId", cartControllers.ToggleWishlistItem(db))
		userGroup.GET("/wishlist", cartControllers.GetWishlist(db))

		// ──────────────── Shopping Cart ────────────────
		userGroup.POST("/cart/:itemId", cartControllers.AddCartItem(db))
		userGroup.PATCH("/cart/:itemId", cartControllers.DecrementCartItem(db))
		userGroup.DELETE("/cart/:itemId", cartControllers.DeleteCartItem(db))
		userGroup.GET("/cart", cartControllers.GetCart(db))

		// ──────────────── Reviews & Uploads ────────────────
		userGroup.POST("/products/:id/reviews", productcontroller.AddProductReview(db))
		userGroup.POST("/upload/product", uploadControllers.UploadProductImage())
	}
}
