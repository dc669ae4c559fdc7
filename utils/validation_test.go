package utils

import (
	"strings"
	"testing"

	"github.com/glowishii/ecommerce-api/models"
)

func TestValidateSignupData(t *testing.T) {
	if errs := ValidateSignupData("Asha", "asha@example.com", "Str0ng!pass"); len(errs) != 0 {
		t.Fatalf("valid signup rejected: %v", errs)
	}

	// "abc123" has no uppercase or symbol and is too short.
	errs := ValidateSignupData("Asha", "asha@example.com", "abc123")
	if len(errs) != 1 || errs[0].Field != "password" {
		t.Fatalf("weak password not rejected: %v", errs)
	}

	errs = ValidateSignupData("", "not-an-email", "")
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"name", "email", "password"} {
		if !fields[f] {
			t.Fatalf("expected error for field %q, got %v", f, errs)
		}
	}

	if errs := ValidateSignupData("A", "a@b.co", "Str0ng!pass"); len(errs) != 1 || errs[0].Field != "name" {
		t.Fatalf("1-char name not rejected: %v", errs)
	}
	if errs := ValidateSignupData(strings.Repeat("a", 51), "a@b.co", "Str0ng!pass"); len(errs) != 1 {
		t.Fatalf("51-char name not rejected: %v", errs)
	}
}

func TestIsStrongPassword(t *testing.T) {
	weak := []string{"short1!", "alllowercase1!", "ALLUPPERCASE1!", "NoDigits!!", "NoSymbols11"}
	for _, p := range weak {
		if IsStrongPassword(p) {
			t.Fatalf("IsStrongPassword(%q) = true, want false", p)
		}
	}
	if !IsStrongPassword("Str0ng!pass") {
		t.Fatal("strong password rejected")
	}
}

func TestValidPhone(t *testing.T) {
	for _, p := range []string{"9876543210", "+919876543210"} {
		if !ValidPhone(p) {
			t.Fatalf("ValidPhone(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"1234567890", "98765", "", "98765432101"} {
		if ValidPhone(p) {
			t.Fatalf("ValidPhone(%q) = true, want false", p)
		}
	}
}

func TestValidateAddress(t *testing.T) {
	addr := models.Address{
		Name: "Home", Street: "12 MG Road", City: "Pune",
		State: "MH", Pincode: "411001", Phone: "9876543210",
	}
	if err := ValidateAddress(addr); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}

	bad := addr
	bad.Pincode = "4110"
	if err := ValidateAddress(bad); err == nil {
		t.Fatal("short pincode accepted")
	}

	bad = addr
	bad.Street = ""
	if err := ValidateAddress(bad); err == nil {
		t.Fatal("missing street accepted")
	}
}

func TestValidateProductData(t *testing.T) {
	name := "Lavender Jar"
	category := "jar"
	price := 400.0
	discounted := 350.0

	d := ProductData{
		Name: &name, Category: &category,
		Price: &price, DiscountedPrice: &discounted,
		Images: []string{"/uploads/products/jar.png"},
	}
	if errs := ValidateProductData(d); len(errs) != 0 {
		t.Fatalf("valid product rejected: %v", errs)
	}

	over := 500.0
	d.DiscountedPrice = &over
	if errs := ValidateProductData(d); len(errs) != 1 {
		t.Fatalf("discounted > price not rejected: %v", errs)
	}

	if errs := ValidateProductData(ProductData{}); len(errs) != 4 {
		t.Fatalf("empty payload: got %d errors, want 4: %v", len(errs), errs)
	}
}

func TestValidateProductEditData(t *testing.T) {
	if errs := ValidateProductEditData(ProductData{}); len(errs) != 0 {
		t.Fatalf("empty edit rejected: %v", errs)
	}

	neg := -10.0
	if errs := ValidateProductEditData(ProductData{DiscountedPrice: &neg}); len(errs) != 1 {
		t.Fatalf("negative discounted price not rejected: %v", errs)
	}

	zero := 0.0
	if errs := ValidateProductEditData(ProductData{Price: &zero}); len(errs) != 1 {
		t.Fatalf("zero price not rejected: %v", errs)
	}
}

func TestValidateOrderData(t *testing.T) {
	valid := OrderData{
		Items: []OrderItemData{
			{ProductID: 1, Name: "x", Quantity: 2, Price: 50, Image: "url"},
		},
		ShippingAddress: models.ShippingAddress{
			Street: "12 MG Road", City: "Pune", State: "MH",
			Pincode: "411001", Phone: "9876543210",
		},
		Payment: PaymentData{Method: "COD"},
	}
	if errs := ValidateOrderData(valid); len(errs) != 0 {
		t.Fatalf("valid order rejected: %v", errs)
	}

	noItems := valid
	noItems.Items = nil
	if errs := ValidateOrderData(noItems); len(errs) == 0 {
		t.Fatal("empty item list accepted")
	}

	badMethod := valid
	badMethod.Payment.Method = "Barter"
	if errs := ValidateOrderData(badMethod); len(errs) != 1 {
		t.Fatalf("bad payment method: %v", errs)
	}

	badItem := valid
	badItem.Items = []OrderItemData{{Quantity: 0, Price: -1}}
	errs := ValidateOrderData(badItem)
	if len(errs) != 5 {
		t.Fatalf("invalid item: got %d errors, want 5: %v", len(errs), errs)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, m := range []string{"COD", "Credit Card", "UPI", "Net Banking"} {
		if _, err := ParsePaymentMethod(m); err != nil {
			t.Fatalf("ParsePaymentMethod(%q) rejected", m)
		}
	}
	if _, err := ParsePaymentMethod("cod"); err == nil {
		t.Fatal("lowercase method accepted")
	}
}
