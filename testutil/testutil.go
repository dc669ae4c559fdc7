package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/glowishii/ecommerce-api/logger"
	"github.com/glowishii/ecommerce-api/models"
)

// OpenDB returns an isolated in-memory database with the full schema.
func OpenDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.WishlistItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Product{},
		&models.Image{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.EmailOTP{},
		&models.Pincode{},
	); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

// NewLogger returns a logger for tests.
func NewLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("dev")
	if err != nil {
		tb.Fatalf("new logger: %v", err)
	}
	return log
}

// SeedUser creates a verified user with an empty cart.
func SeedUser(tb testing.TB, db *gorm.DB, email string, admin bool) *models.User {
	tb.Helper()
	u := &models.User{
		ID:       uuid.NewString(),
		Name:     "Test User",
		Email:    email,
		Password: "hash",
		Verified: true,
		IsAdmin:  admin,
	}
	u.Cart = models.Cart{UserID: u.ID}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedProduct creates a product with one image.
func SeedProduct(tb testing.TB, db *gorm.DB, name string, price, discounted float64, stock int) *models.Product {
	tb.Helper()
	p := &models.Product{
		Name:            name,
		Category:        "jar",
		Description:     "scented candle",
		Price:           price,
		DiscountedPrice: discounted,
		Stock:           stock,
		Images:          []models.Image{{URL: "/uploads/products/" + name + ".png"}},
	}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}
