package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/glowishii/ecommerce-api/models"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^(\+91)?[6-9]\d{9}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

// FieldError is a single validation failure tied to an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// IsStrongPassword requires 8+ chars with at least one lowercase, uppercase,
// digit and symbol.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// ValidEmail reports whether the address looks like an email.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPhone matches an Indian mobile number, with or without +91.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidPincode matches a 6-digit Indian postal code.
func ValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// ValidateSignupData checks the signup payload and returns every failure.
func ValidateSignupData(name, email, password string) []FieldError {
	var errs []FieldError

	if name == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	} else if len(name) < 2 || len(name) > 50 {
		errs = append(errs, FieldError{"name", "Name must be 2-50 characters long"})
	}

	if email == "" {
		errs = append(errs, FieldError{"email", "Email is required"})
	} else if !ValidEmail(email) {
		errs = append(errs, FieldError{"email", "Email is not appropriate!"})
	}

	if password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	} else if !IsStrongPassword(password) {
		errs = append(errs, FieldError{"password",
			"Password must be 8+ chars with uppercase, lowercase, number & special char"})
	}

	return errs
}

// ValidatePassword rejects weak passwords for the change-password flow.
func ValidatePassword(newPassword string) error {
	if !IsStrongPassword(newPassword) {
		return errors.New("Password must be 8+ chars with uppercase, lowercase, number & special char.")
	}
	return nil
}

// ValidateAddress checks an address-book entry. The first failure wins.
func ValidateAddress(a models.Address) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
		{"phone", a.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if !ValidPincode(a.Pincode) {
		return errors.New("Invalid Indian pincode (must be 6 digits)")
	}
	if !ValidPhone(a.Phone) {
		return errors.New("Invalid phone number")
	}
	return nil
}

// ProductData is the admin product payload. Pointer fields distinguish
// "absent" from zero values so the same shape serves create and edit.
type ProductData struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	Images          []string `json:"images"`
	Stock           *int     `json:"stock"`
}

// ValidateProductData checks a product-create payload.
func ValidateProductData(d ProductData) []string {
	var errs []string

	if d.Name == nil || len(strings.TrimSpace(*d.Name)) < 2 {
		errs = append(errs, "Product name must be at least 2 characters")
	}
	if d.Category == nil || strings.TrimSpace(*d.Category) == "" {
		errs = append(errs, "Invalid category")
	}
	if d.Price == nil || *d.Price <= 0 {
		errs = append(errs, "Price must be greater than 0")
	}
	if d.DiscountedPrice != nil && d.Price != nil && *d.DiscountedPrice > *d.Price {
		errs = append(errs, "Discounted price cannot exceed original price")
	}
	if len(d.Images) == 0 {
		errs = append(errs, "At least one product photo is required")
	}

	return errs
}

// ValidateProductEditData checks a partial product update. Only supplied
// fields are validated.
func ValidateProductEditData(d ProductData) []string {
	var errs []string

	if d.Name != nil && len(strings.TrimSpace(*d.Name)) < 2 {
		errs = append(errs, "Product name must be at least 2 characters")
	}
	if d.Category != nil && strings.TrimSpace(*d.Category) == "" {
		errs = append(errs, "Invalid category")
	}
	if d.Price != nil && *d.Price <= 0 {
		errs = append(errs, "Price must be greater than 0")
	}
	if d.DiscountedPrice != nil {
		if d.Price != nil && *d.DiscountedPrice > *d.Price {
			errs = append(errs, "Discounted price cannot exceed original price")
		}
		if *d.DiscountedPrice < 0 {
			errs = append(errs, "Discounted price cannot be negative")
		}
	}

	return errs
}

// OrderItemData is one line of an order payload.
type OrderItemData struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// PaymentData is the payment block of an order payload.
type PaymentData struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId"`
}

// OrderData is the order-create payload. TotalAmount is accepted on the wire
// but ignored; totals are recomputed server-side.
type OrderData struct {
	Items           []OrderItemData        `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Payment         PaymentData            `json:"payment"`
	TotalAmount     float64                `json:"totalAmount"`
}

var allowedPaymentMethods = []models.PaymentMethod{
	models.PaymentMethodCOD,
	models.PaymentMethodCreditCard,
	models.PaymentMethodUPI,
	models.PaymentMethodNetBanking,
}

// ValidateOrderData checks an order payload and returns every failure.
func ValidateOrderData(d OrderData) []string {
	var errs []string

	if len(d.Items) == 0 {
		errs = append(errs, "Order must have at least one item.")
	}
	for i, item := range d.Items {
		if item.ProductID == 0 {
			errs = append(errs, fmt.Sprintf("Item at index %d has invalid or missing productId.", i))
		}
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, fmt.Sprintf("Item at index %d must have a name.", i))
		}
		if strings.TrimSpace(item.Image) == "" {
			errs = append(errs, fmt.Sprintf("Item at index %d must have an image URL.", i))
		}
		if item.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("Item at index %d must have quantity of at least 1.", i))
		}
		if item.Price < 0 {
			errs = append(errs, fmt.Sprintf("Item at index %d must have a non-negative price.", i))
		}
	}

	addr := d.ShippingAddress
	if strings.TrimSpace(addr.Street) == "" {
		errs = append(errs, "Street is required in shipping address.")
	}
	if strings.TrimSpace(addr.City) == "" {
		errs = append(errs, "City is required in shipping address.")
	}
	if strings.TrimSpace(addr.State) == "" {
		errs = append(errs, "State is required in shipping address.")
	}
	if !ValidPincode(addr.Pincode) {
		errs = append(errs, "Postal code must be a 6-digit number.")
	}
	if !ValidPhone(addr.Phone) {
		errs = append(errs, "Invalid Indian phone number in shipping address.")
	}

	if d.Payment.Method == "" {
		errs = append(errs, "Payment method is required.")
	} else if _, err := ParsePaymentMethod(d.Payment.Method); err != nil {
		errs = append(errs, "Payment method must be one of: COD, Credit Card, UPI, Net Banking")
	}

	return errs
}

// ParsePaymentMethod maps a wire string to the payment method enum.
func ParsePaymentMethod(method string) (models.PaymentMethod, error) {
	for _, m := range allowedPaymentMethods {
		if method == string(m) {
			return m, nil
		}
	}
	return "", errors.New("invalid payment method")
}
