package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/middleware"
	"github.com/glowishii/ecommerce-api/models"
)

// POST /wishlist/:itemId — toggle membership. Absent products are appended,
// present ones removed; toggling twice restores the original state.
func ToggleWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, ok := parseItemID(c)
		if !ok {
			return
		}
		if _, ok := fetchProduct(c, db, productID); !ok {
			return
		}

		var item models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", user.ID, productID).
			First(&item).Error
		if err == gorm.ErrRecordNotFound {
			item = models.WishlistItem{UserID: user.ID, ProductID: productID}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update wishlist"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "Item added to Wishlist!"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update wishlist"})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from Wishlist!"})
	}
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var items []models.WishlistItem
		if err := db.Preload("Product.Images").Preload("Product").
			Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch wishlist"})
			return
		}

		if len(items) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "No products added to wishlist! Start Shopping!!"})
			return
		}

		products := make([]models.Product, 0, len(items))
		for _, item := range items {
			products = append(products, item.Product)
		}
		c.JSON(http.StatusOK, products)
	}
}
