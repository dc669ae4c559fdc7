package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/utils"
)

type ProductRequest struct {
	ProductData utils.ProductData `json:"productData"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		data := req.ProductData
		if errs := utils.ValidateProductData(data); len(errs) > 0 {
			c.JSON(http.StatusNotAcceptable, gin.H{"message": errs})
			return
		}

		product := models.Product{
			Name:     *data.Name,
			Category: *data.Category,
		}
		if data.Description != nil {
			product.Description = *data.Description
		}
		if data.Price != nil {
			product.Price = *data.Price
		}
		if data.DiscountedPrice != nil {
			product.DiscountedPrice = *data.DiscountedPrice
		}
		if data.Stock != nil {
			product.Stock = *data.Stock
		}
		for _, url := range data.Images {
			product.Images = append(product.Images, models.Image{URL: url})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully!", "product": product})
	}
}

// PATCH /admin/products/:id — partial update; only supplied fields change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		data := req.ProductData
		if errs := utils.ValidateProductEditData(data); len(errs) > 0 {
			c.JSON(http.StatusNotAcceptable, gin.H{"message": errs})
			return
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			}
			return
		}

		if data.Name != nil {
			product.Name = *data.Name
		}
		if data.Category != nil {
			product.Category = *data.Category
		}
		if data.Description != nil {
			product.Description = *data.Description
		}
		if data.Price != nil {
			product.Price = *data.Price
		}
		if data.DiscountedPrice != nil {
			product.DiscountedPrice = *data.DiscountedPrice
		}
		if data.Stock != nil {
			product.Stock = *data.Stock
		}

		txErr := db.Transaction(func(tx *gorm.DB) error {
			if data.Images != nil {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.Image{}).Error; err != nil {
					return err
				}
				product.Images = nil
				for _, url := range data.Images {
					product.Images = append(product.Images, models.Image{ProductID: product.ID, URL: url})
				}
			}
			return tx.Save(&product).Error
		})
		if txErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product Updated!", "product": product})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found!"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			}
			return
		}

		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if txErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product Deleted Successfully!"})
	}
}
