package cartControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/testutil"
)

func newTestRouter(db *gorm.DB, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	})
	r.POST("/wishlist/:itemId", ToggleWishlistItem(db))
	r.GET("/wishlist", GetWishlist(db))
	r.POST("/cart/:itemId", AddCartItem(db))
	r.PATCH("/cart/:itemId", DecrementCartItem(db))
	r.DELETE("/cart/:itemId", DeleteCartItem(db))
	r.GET("/cart", GetCart(db))
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func loadCart(t *testing.T, db *gorm.DB, userID string) models.Cart {
	t.Helper()
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	return cart
}

func TestAddCartItemInsertsAtDiscountedPrice(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newTestRouter(db, user)

	w := do(r, http.MethodPost, fmt.Sprintf("/cart/%d", product.ID))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	cart := loadCart(t, db, user.ID)
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d items, want 1", len(cart.Items))
	}
	item := cart.Items[0]
	if item.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", item.Quantity)
	}
	if item.ItemsTotal != 350 {
		t.Fatalf("line total = %v, want discounted price 350", item.ItemsTotal)
	}
	if cart.CartTotal != 350 {
		t.Fatalf("cart total = %v, want 350", cart.CartTotal)
	}
}

func TestAddCartItemIncrementsAndReprices(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newTestRouter(db, user)

	path := fmt.Sprintf("/cart/%d", product.ID)
	do(r, http.MethodPost, path)
	w := do(r, http.MethodPost, path)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	cart := loadCart(t, db, user.ID)
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", cart.Items[0].Quantity)
	}
	if cart.Items[0].ItemsTotal != 700 {
		t.Fatalf("line total = %v, want 700", cart.Items[0].ItemsTotal)
	}
	if cart.CartTotal != 700 {
		t.Fatalf("cart total = %v, want 700", cart.CartTotal)
	}
}

func TestCartMutationsRejectUnknownProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	r := newTestRouter(db, user)

	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		if w := do(r, method, "/cart/9999"); w.Code != http.StatusNotFound {
			t.Fatalf("%s unknown product: status = %d, want 404", method, w.Code)
		}
	}
	if w := do(r, http.MethodPost, "/wishlist/9999"); w.Code != http.StatusNotFound {
		t.Fatalf("wishlist unknown product: status = %d, want 404", w.Code)
	}
}

func TestDecrementUsesDiscountedPrice(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newTestRouter(db, user)

	path := fmt.Sprintf("/cart/%d", product.ID)
	do(r, http.MethodPost, path)
	do(r, http.MethodPost, path)
	do(r, http.MethodPost, path)

	w := do(r, http.MethodPatch, path)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	cart := loadCart(t, db, user.ID)
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", cart.Items[0].Quantity)
	}
	// 2 × discounted price, not 2 × list price.
	if cart.Items[0].ItemsTotal != 700 {
		t.Fatalf("line total = %v, want 700", cart.Items[0].ItemsTotal)
	}
	if cart.CartTotal != 700 {
		t.Fatalf("cart total = %v, want 700", cart.CartTotal)
	}
}

func TestDecrementAtQuantityOneRemovesLine(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newTestRouter(db, user)

	path := fmt.Sprintf("/cart/%d", product.ID)
	do(r, http.MethodPost, path)
	w := do(r, http.MethodPatch, path)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	cart := loadCart(t, db, user.ID)
	if len(cart.Items) != 0 {
		t.Fatalf("cart has %d items, want 0", len(cart.Items))
	}
	if cart.CartTotal != 0 {
		t.Fatalf("cart total = %v, want 0", cart.CartTotal)
	}

	// Decrementing a line that no longer exists is a 404.
	if w := do(r, http.MethodPatch, path); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteCartItemRemovesWholeLine(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	jar := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	pillar := testutil.SeedProduct(t, db, "pillar", 200, 150, 10)
	r := newTestRouter(db, user)

	do(r, http.MethodPost, fmt.Sprintf("/cart/%d", jar.ID))
	do(r, http.MethodPost, fmt.Sprintf("/cart/%d", jar.ID))
	do(r, http.MethodPost, fmt.Sprintf("/cart/%d", pillar.ID))

	w := do(r, http.MethodDelete, fmt.Sprintf("/cart/%d", jar.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	cart := loadCart(t, db, user.ID)
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart.Items))
	}
	if cart.Items[0].ProductID != pillar.ID {
		t.Fatalf("wrong line survived: product %d", cart.Items[0].ProductID)
	}
	if cart.CartTotal != 150 {
		t.Fatalf("cart total = %v, want 150", cart.CartTotal)
	}
}

func TestGetCartRepricesStaleLines(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newTestRouter(db, user)

	path := fmt.Sprintf("/cart/%d", product.ID)
	do(r, http.MethodPost, path)
	do(r, http.MethodPost, path)

	// Price drop after the lines were written.
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("discounted_price", 300).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	w := do(r, http.MethodGet, "/cart")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	cart := loadCart(t, db, user.ID)
	if cart.Items[0].ItemsTotal != 600 {
		t.Fatalf("line total = %v, want repriced 600", cart.Items[0].ItemsTotal)
	}
	if cart.CartTotal != 600 {
		t.Fatalf("cart total = %v, want 600", cart.CartTotal)
	}
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newTestRouter(db, user)

	path := fmt.Sprintf("/wishlist/%d", product.ID)

	w := do(r, http.MethodPost, path)
	if w.Code != http.StatusCreated {
		t.Fatalf("first toggle: status = %d", w.Code)
	}
	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("wishlist count = %d, want 1", count)
	}

	w = do(r, http.MethodPost, path)
	if w.Code != http.StatusOK {
		t.Fatalf("second toggle: status = %d", w.Code)
	}
	db.Model(&models.WishlistItem{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatalf("wishlist count after round trip = %d, want 0", count)
	}
}
