package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/middleware"
	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/utils"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	OrderData utils.OrderData `json:"orderData"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPlaced:
		return models.OrderStatusPlaced, nil
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type pageParams struct {
	page  int
	limit int
}

func parsePageParams(c *gin.Context) pageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}
	return pageParams{page: page, limit: limit}
}

// categoryScope restricts orders to those containing at least one item of
// the given product category.
func categoryScope(db *gorm.DB, category string) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if category == "" {
			return query
		}
		sub := db.Table("order_items").
			Select("order_items.order_id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("products.category = ?", category)
		return query.Where("orders.id IN (?)", sub)
	}
}

// listOrders runs the shared pagination contract over a base query.
func listOrders(c *gin.Context, db *gorm.DB, base *gorm.DB) {
	params := parsePageParams(c)
	category := c.Query("category")

	query := base.Scopes(categoryScope(db, category))

	var totalOrders int64
	if err := query.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	totalPages := int(math.Ceil(float64(totalOrders) / float64(params.limit)))

	if params.page > totalPages {
		c.JSON(http.StatusNotFound, gin.H{"message": "No Orders found"})
		return
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at DESC").
		Offset((params.page - 1) * params.limit).
		Limit(params.limit).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":        params.page,
		"totalPages":  totalPages,
		"totalOrders": totalOrders,
		"orders":      orders,
	})
}

// -------- Core Logic --------

// PlaceOrder validates the payload, snapshots the line items, deducts stock
// and persists the order. Totals are recomputed here; whatever total the
// client sent is ignored.
func PlaceOrder(db *gorm.DB, userID string, data utils.OrderData) (*models.Order, int, error) {
	if errs := utils.ValidateOrderData(data); len(errs) > 0 {
		return nil, http.StatusNotAcceptable, fmt.Errorf("%v", errs)
	}

	method, err := utils.ParsePaymentMethod(data.Payment.Method)
	if err != nil {
		return nil, http.StatusNotAcceptable, err
	}

	var order models.Order
	status := http.StatusCreated
	txErr := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		for _, item := range data.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					status = http.StatusNotFound
					return fmt.Errorf("product %d not found", item.ProductID)
				}
				return err
			}

			// Conditional decrement keeps concurrent orders from both
			// taking the last unit.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				status = http.StatusBadRequest
				return errors.New("insufficient stock for product: " + product.Name)
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Image:     item.Image,
			})
		}

		itemsTotal, totalAmount := utils.OrderTotals(orderItems)

		order = models.Order{
			UserID:          userID,
			Items:           orderItems,
			ShippingAddress: data.ShippingAddress,
			Payment: models.Payment{
				Method:        method,
				Status:        models.PaymentStatusPending,
				TransactionID: data.Payment.TransactionID,
			},
			OrderStatus:     models.OrderStatusPlaced,
			ItemsTotal:      itemsTotal,
			DeliveryCharges: utils.DeliveryCharges,
			TotalAmount:     totalAmount,
		}
		return tx.Create(&order).Error
	})
	if txErr != nil {
		if status == http.StatusCreated {
			status = http.StatusInternalServerError
		}
		return nil, status, txErr
	}
	return &order, http.StatusCreated, nil
}

// -------- Handlers --------

// POST /order
func PlaceOrderHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		order, status, err := PlaceOrder(db, user.ID, req.OrderData)
		if err != nil {
			c.JSON(status, gin.H{"message": err.Error()})
			return
		}

		hub.Broadcast(order)
		c.JSON(status, gin.H{"message": "Order created successfully!", "order": order})
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		listOrders(c, db, db.Where("user_id = ?", user.ID))
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		orderID := c.Param("id")

		query := db.Preload("Items")
		if !user.IsAdmin {
			query = query.Where("user_id = ?", user.ID)
		}

		var order models.Order
		if err := query.Where("id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Invalid order ID! No Order found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /allOrders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listOrders(c, db, db.Model(&models.Order{}))
	}
}

// PATCH /order/:id (admin). The new status must be a legal transition from
// the order's current status.
func UpdateOrderStatusHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}
		newStatus, err := mapOrderStatus(req.OrderStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}

		if !order.OrderStatus.CanTransitionTo(newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("invalid status transition from %s to %s",
					order.OrderStatus, newStatus),
			})
			return
		}

		if err := db.Model(&order).Update("order_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}
		order.OrderStatus = newStatus

		hub.Broadcast(&order)
		c.JSON(http.StatusOK, gin.H{"message": "Order Status updated successfully!!"})
	}
}
