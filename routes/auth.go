package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/auth"
	productcontroller "github.com/glowishii/ecommerce-api/controllers/product"
	"github.com/glowishii/ecommerce-api/otp"
)

// SetupAuthRoutes registers the public endpoints: signup/login/OTP and
// catalog browsing.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, otpSvc *otp.Service) {
	r.POST("/signup", auth.SignupHandler(db, otpSvc))
	r.POST("/login", auth.LoginHandler(db))
	r.POST("/logout", auth.LogoutHandler())

	r.POST("/otp/send", auth.SendOTPHandler(db, otpSvc))
	r.POST("/otp/verify", auth.VerifyOTPHandler(db, otpSvc))

	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/products/:id/reviews", productcontroller.GetProductReviews(db))
}
