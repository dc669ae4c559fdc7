package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/middleware"
	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/utils"
)

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// GET /me
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var full models.User
		err := db.Preload("Addresses").
			Preload("WishlistItems.Product").
			Preload("Cart.Items.Product").
			First(&full, "id = ?", user.ID).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, full)
	}
}

// PATCH /updateProfile — only name, gender and phone may change here.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		allowed := map[string]bool{"name": true, "gender": true, "phone": true}
		for field := range payload {
			if !allowed[field] {
				c.JSON(http.StatusNotAcceptable, gin.H{"message": "Some fields are not allowed to be updated"})
				return
			}
		}

		if phone, ok := payload["phone"].(string); ok && strings.TrimSpace(phone) != "" {
			if !utils.ValidPhone(phone) {
				c.JSON(http.StatusNotAcceptable, gin.H{"message": "Invalid phone number"})
				return
			}
		}
		if name, ok := payload["name"].(string); ok {
			if len(name) < 2 || len(name) > 50 {
				c.JSON(http.StatusNotAcceptable, gin.H{"message": "Name must be 2-50 characters long"})
				return
			}
		}
		if gender, ok := payload["gender"].(string); ok {
			if gender != "Male" && gender != "Female" {
				c.JSON(http.StatusNotAcceptable, gin.H{"message": "Invalid gender"})
				return
			}
		}

		if len(payload) > 0 {
			if err := db.Model(&models.User{}).Where("id = ?", user.ID).
				Updates(payload).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
				return
			}
		}

		var updated models.User
		if err := db.First(&updated, "id = ?", user.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"updatedUserData": updated,
			"message":         "Data updated successfully!!",
		})
	}
}

// PATCH /updatePassword
func UpdatePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req UpdatePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil ||
			req.OldPassword == "" || req.NewPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(user.Password), []byte(req.OldPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Old Password is incorrect"})
			return
		}

		if req.OldPassword == req.NewPassword {
			c.JSON(http.StatusBadRequest, gin.H{"message": "New password must be different from old password"})
			return
		}

		if err := utils.ValidatePassword(req.NewPassword); err != nil {
			c.JSON(http.StatusNotAcceptable, gin.H{"message": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			Update("password", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password Updated Successfully!!"})
	}
}

// POST /address
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var address models.Address
		if err := c.ShouldBindJSON(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		if err := utils.ValidateAddress(address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		address.ID = 0
		address.UserID = user.ID
		if address.Country == "" {
			address.Country = "India"
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add address"})
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", user.ID).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address added successfully", "addresses": addresses})
	}
}

// PATCH /address/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		addressID := c.Param("id")

		var updates models.Address
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		if err := utils.ValidateAddress(updates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", addressID, user.ID).
			First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}

		address.Name = updates.Name
		address.Street = updates.Street
		address.City = updates.City
		address.State = updates.State
		address.Pincode = updates.Pincode
		address.Phone = updates.Phone
		if updates.Country != "" {
			address.Country = updates.Country
		}

		if err := db.Save(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully", "address": address})
	}
}

// DELETE /address/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		addressID := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", addressID, user.ID).
			Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", user.ID).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully", "addresses": addresses})
	}
}

// GET /pincode/:code — deliverability lookup against the reference table.
func GetPincode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.Param("code"))

		var rows []models.Pincode
		if err := db.Where("pincode = ?", code).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch pincode"})
			return
		}
		if len(rows) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No such pincode found"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
