package utils

import (
	"math"

	"github.com/glowishii/ecommerce-api/models"
)

// DeliveryCharges is the flat fee added to every order.
const DeliveryCharges = 100.0

// ItemTotal is the line total for a single cart or order item.
func ItemTotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}

// CartTotal sums the line totals of all items in a cart.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.ItemsTotal
	}
	return total
}

// OrderTotals recomputes an order's totals from its line items. Caller
// supplied totals are never trusted; every save goes through here.
func OrderTotals(items []models.OrderItem) (itemsTotal, totalAmount float64) {
	for _, item := range items {
		itemsTotal += item.Price * float64(item.Quantity)
	}
	return itemsTotal, itemsTotal + DeliveryCharges
}

// AverageRating is the mean review rating rounded to one decimal place.
// An empty review list yields 0.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total int
	for _, r := range reviews {
		total += r.Ratings
	}
	avg := float64(total) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
