package utils

import (
	"testing"

	"github.com/glowishii/ecommerce-api/models"
)

func TestOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		{Name: "x", Quantity: 2, Price: 50},
	}
	itemsTotal, totalAmount := OrderTotals(items)
	if itemsTotal != 100 {
		t.Fatalf("itemsTotal = %v, want 100", itemsTotal)
	}
	if totalAmount != 200 {
		t.Fatalf("totalAmount = %v, want 200", totalAmount)
	}
}

func TestOrderTotalsMultipleItems(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 3, Price: 10},
		{Quantity: 1, Price: 249.5},
	}
	itemsTotal, totalAmount := OrderTotals(items)
	if itemsTotal != 279.5 {
		t.Fatalf("itemsTotal = %v, want 279.5", itemsTotal)
	}
	if totalAmount != 279.5+DeliveryCharges {
		t.Fatalf("totalAmount = %v, want %v", totalAmount, 279.5+DeliveryCharges)
	}
}

func TestCartTotal(t *testing.T) {
	items := []models.CartItem{
		{ItemsTotal: 120},
		{ItemsTotal: 79.9},
	}
	if got := CartTotal(items); got != 199.9 {
		t.Fatalf("CartTotal = %v, want 199.9", got)
	}
	if got := CartTotal(nil); got != 0 {
		t.Fatalf("CartTotal(nil) = %v, want 0", got)
	}
}

func TestItemTotal(t *testing.T) {
	if got := ItemTotal(49.5, 4); got != 198 {
		t.Fatalf("ItemTotal = %v, want 198", got)
	}
}

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty list never divides by zero", nil, 0},
		{"single review", []int{4}, 4},
		{"rounded to one decimal", []int{5, 4, 4}, 4.3},
		{"exact mean", []int{1, 5}, 3},
		{"rounds half up", []int{4, 5}, 4.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var reviews []models.Review
			for _, r := range tc.ratings {
				reviews = append(reviews, models.Review{Ratings: r})
			}
			if got := AverageRating(reviews); got != tc.want {
				t.Fatalf("AverageRating(%v) = %v, want %v", tc.ratings, got, tc.want)
			}
		})
	}
}
