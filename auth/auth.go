package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/otp"
	"github.com/glowishii/ecommerce-api/utils"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OTPSendRequest struct {
	Email string `json:"email"`
}

type OTPVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// POST /signup
func SignupHandler(db *gorm.DB, otpSvc *otp.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		if errs := utils.ValidateSignupData(req.Name, req.Email, req.Password); len(errs) > 0 {
			c.JSON(http.StatusNotAcceptable, gin.H{"errors": errs})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}

		userID := uuid.NewString()
		user := models.User{
			ID:       userID,
			Name:     req.Name,
			Email:    email,
			Password: string(hash),
			Cart:     models.Cart{UserID: userID},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		if err := otpSvc.Send(email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send verification OTP"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered. Please verify your email with the OTP sent.",
		})
	}
}

// POST /login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		var user models.User
		err := db.Preload("Cart.Items").Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid email!!"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
			return
		}

		if !user.Verified {
			c.JSON(http.StatusForbidden, gin.H{"message": "Please verify your email first!!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid password!!"})
			return
		}

		token, err := IssueJWT(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
			return
		}

		c.SetCookie("token", token, int(TokenValidity.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// POST /otp/send
func SendOTPHandler(db *gorm.DB, otpSvc *otp.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OTPSendRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Email not exist"})
			return
		}

		if user.Verified {
			c.JSON(http.StatusOK, gin.H{"message": "User already verified"})
			return
		}

		if err := otpSvc.Send(email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully!"})
	}
}

// POST /otp/verify
func VerifyOTPHandler(db *gorm.DB, otpSvc *otp.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OTPVerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and OTP are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ok, err := otpSvc.Verify(email, req.OTP)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify OTP"})
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid OTP"})
			return
		}

		if err := db.Model(&models.User{}).Where("email = ?", email).
			Update("verified", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark user verified"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully. You can now log in."})
	}
}

// POST /logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logout Successful!!"})
	}
}
