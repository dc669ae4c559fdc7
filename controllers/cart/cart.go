package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/middleware"
	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/utils"
)

// parseItemID reads the :itemId product reference from the URL.
func parseItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

// fetchProduct loads the referenced product or writes the 404.
func fetchProduct(c *gin.Context, db *gorm.DB, id uint) (*models.Product, bool) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		}
		return nil, false
	}
	return &product, true
}

// recomputeCartTotal sets the cart total to the sum of its line totals.
func recomputeCartTotal(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return err
	}
	return tx.Model(&models.Cart{}).Where("cart_id = ?", cartID).
		Update("cart_total", utils.CartTotal(items)).Error
}

// loadCartResponse returns the cart with items and products populated.
func loadCartResponse(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product.Images").Preload("Items.Product").
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// POST /cart/:itemId — insert at quantity 1 or increment by 1. Line totals
// always price at the product's discounted price.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, ok := parseItemID(c)
		if !ok {
			return
		}
		product, ok := fetchProduct(c, db, productID)
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
				return err
			}

			var item models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
				First(&item).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				item = models.CartItem{
					CartID:     cart.CartID,
					ProductID:  productID,
					Quantity:   1,
					ItemsTotal: product.DiscountedPrice,
					AddedAt:    time.Now(),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				item.Quantity++
				item.ItemsTotal = utils.ItemTotal(product.DiscountedPrice, item.Quantity)
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			}

			return recomputeCartTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}

		cart, err := loadCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Cart updated successfully", "cart": cart})
	}
}

// PATCH /cart/:itemId — decrement by 1, removing the line at quantity 1.
func DecrementCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, ok := parseItemID(c)
		if !ok {
			return
		}
		product, ok := fetchProduct(c, db, productID)
		if !ok {
			return
		}

		var message string
		notFound := false
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
				return err
			}

			var item models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
				First(&item).Error
			if err == gorm.ErrRecordNotFound {
				notFound = true
				return nil
			}
			if err != nil {
				return err
			}

			if item.Quantity > 1 {
				item.Quantity--
				item.ItemsTotal = utils.ItemTotal(product.DiscountedPrice, item.Quantity)
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
				message = "Product quantity decreased by 1"
			} else {
				if err := tx.Delete(&item).Error; err != nil {
					return err
				}
				message = "Product removed from cart"
			}

			return recomputeCartTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
		if notFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
			return
		}

		cart, err := loadCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "cart": cart})
	}
}

// DELETE /cart/:itemId — remove the line regardless of quantity.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, ok := parseItemID(c)
		if !ok {
			return
		}
		if _, ok := fetchProduct(c, db, productID); !ok {
			return
		}

		notFound := false
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
				return err
			}

			result := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
				Delete(&models.CartItem{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				notFound = true
				return nil
			}

			return recomputeCartTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
		if notFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
			return
		}

		cart, err := loadCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "cart": cart})
	}
}

// GET /cart — re-price every line from the current discounted price before
// returning, so stale cached prices never reach the client.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items.Product").Where("user_id = ?", user.ID).
				First(&cart).Error; err != nil {
				return err
			}
			for i := range cart.Items {
				item := &cart.Items[i]
				fresh := utils.ItemTotal(item.Product.DiscountedPrice, item.Quantity)
				if fresh != item.ItemsTotal {
					item.ItemsTotal = fresh
					if err := tx.Model(&models.CartItem{}).Where("id = ?", item.ID).
						Update("items_total", fresh).Error; err != nil {
						return err
					}
				}
			}
			return recomputeCartTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		cart, err := loadCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "No products added to Cart! Start Shopping!!"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
