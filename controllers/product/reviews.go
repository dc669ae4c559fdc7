package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/middleware"
	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/utils"
)

type AddReviewRequest struct {
	Review struct {
		Ratings int    `json:"ratings"`
		Comment string `json:"comment"`
	} `json:"review"`
}

// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Reviews").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "No product found!"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			}
			return
		}
		c.JSON(http.StatusOK, product.Reviews)
	}
}

// POST /products/:id/reviews — appends a review and recomputes the average
// rating from the full review list.
func AddProductReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var req AddReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		if req.Review.Ratings < 1 || req.Review.Ratings > 5 {
			c.JSON(http.StatusNotAcceptable, gin.H{"message": "Ratings must be between 1 and 5"})
			return
		}
		if req.Review.Comment != "" && len(strings.TrimSpace(req.Review.Comment)) < 5 {
			c.JSON(http.StatusNotAcceptable, gin.H{"message": "Comment must be at least 5 characters"})
			return
		}

		var product models.Product
		if err := db.Preload("Reviews").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			}
			return
		}

		review := models.Review{
			ProductID: product.ID,
			UserID:    user.ID,
			Ratings:   req.Review.Ratings,
			Comment:   req.Review.Comment,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			reviews := append(product.Reviews, review)
			return tx.Model(&product).Update("avg_rating", utils.AverageRating(reviews)).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to post review"})
			return
		}

		if err := db.Preload("Reviews").First(&product, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Review posted!!",
			"reviews":   product.Reviews,
			"avgRating": product.AvgRating,
		})
	}
}
