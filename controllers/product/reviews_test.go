package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/testutil"
)

func newProductRouter(db *gorm.DB, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	})
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.GET("/products/:id/reviews", GetProductReviews(db))
	r.POST("/products/:id/reviews", AddProductReview(db))
	r.POST("/admin/products", CreateProduct(db))
	r.PATCH("/admin/products/:id", UpdateProduct(db))
	r.DELETE("/admin/products/:id", DeleteProduct(db))
	return r
}

func doJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			panic(err)
		}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func reviewPayload(ratings int, comment string) AddReviewRequest {
	var req AddReviewRequest
	req.Review.Ratings = ratings
	req.Review.Comment = comment
	return req
}

func TestAddReviewRecomputesAverage(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newProductRouter(db, user)
	path := fmt.Sprintf("/products/%d/reviews", product.ID)

	for _, ratings := range []int{4, 5, 5} {
		w := doJSON(r, http.MethodPost, path, reviewPayload(ratings, "lovely scent"))
		if w.Code != http.StatusCreated {
			t.Fatalf("post review: status = %d, body %s", w.Code, w.Body.String())
		}
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	// mean of 4,5,5 rounded to one decimal
	if got.AvgRating != 4.7 {
		t.Fatalf("avg rating = %v, want 4.7", got.AvgRating)
	}
}

func TestAddReviewValidation(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	product := testutil.SeedProduct(t, db, "jar", 400, 350, 10)
	r := newProductRouter(db, user)
	path := fmt.Sprintf("/products/%d/reviews", product.ID)

	if w := doJSON(r, http.MethodPost, path, reviewPayload(0, "great")); w.Code != http.StatusNotAcceptable {
		t.Fatalf("zero rating: status = %d, want 406", w.Code)
	}
	if w := doJSON(r, http.MethodPost, path, reviewPayload(6, "great")); w.Code != http.StatusNotAcceptable {
		t.Fatalf("rating above 5: status = %d, want 406", w.Code)
	}
	if w := doJSON(r, http.MethodPost, path, reviewPayload(4, "ok")); w.Code != http.StatusNotAcceptable {
		t.Fatalf("short comment: status = %d, want 406", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/products/9999/reviews", reviewPayload(4, "lovely")); w.Code != http.StatusNotFound {
		t.Fatalf("unknown product: status = %d, want 404", w.Code)
	}
}

func TestGetProductsFiltersByCategory(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "a@b.co", false)
	testutil.SeedProduct(t, db, "jar candle", 400, 350, 10)
	other := testutil.SeedProduct(t, db, "taper", 100, 90, 10)
	if err := db.Model(other).Update("category", "taper").Error; err != nil {
		t.Fatalf("update category: %v", err)
	}
	r := newProductRouter(db, user)

	w := doJSON(r, http.MethodGet, "/products?category=taper", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 || products[0].Name != "taper" {
		t.Fatalf("filtered products = %+v", products)
	}
}

func TestCreateUpdateDeleteProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	admin := testutil.SeedUser(t, db, "admin@b.co", true)
	r := newProductRouter(db, admin)

	// Missing everything fails validation.
	if w := doJSON(r, http.MethodPost, "/admin/products", ProductRequest{}); w.Code != http.StatusNotAcceptable {
		t.Fatalf("empty create: status = %d, want 406", w.Code)
	}

	name, category := "lavender jar", "jar"
	price, discounted := 450.0, 400.0
	stock := 25
	req := ProductRequest{}
	req.ProductData.Name = &name
	req.ProductData.Category = &category
	req.ProductData.Price = &price
	req.ProductData.DiscountedPrice = &discounted
	req.ProductData.Stock = &stock
	req.ProductData.Images = []string{"/uploads/products/lavender.png"}

	w := doJSON(r, http.MethodPost, "/admin/products", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.Preload("Images").Where("name = ?", name).First(&product).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	if len(product.Images) != 1 {
		t.Fatalf("product has %d images, want 1", len(product.Images))
	}

	// Partial edit touches only the supplied field.
	newStock := 30
	edit := ProductRequest{}
	edit.ProductData.Stock = &newStock
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/admin/products/%d", product.ID), edit)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", w.Code, w.Body.String())
	}
	var updated models.Product
	db.First(&updated, product.ID)
	if updated.Stock != 30 {
		t.Fatalf("stock = %d, want 30", updated.Stock)
	}
	if updated.Name != name || updated.Price != price {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, body %s", w.Code, w.Body.String())
	}
	var count int64
	db.Model(&models.Image{}).Where("product_id = ?", product.ID).Count(&count)
	if count != 0 {
		t.Fatalf("orphan images left behind: %d", count)
	}
}
