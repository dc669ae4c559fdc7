package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	uploadControllers "github.com/glowishii/ecommerce-api/controllers/upload"
	"github.com/glowishii/ecommerce-api/logger"
	"github.com/glowishii/ecommerce-api/middleware"
	"github.com/glowishii/ecommerce-api/models"
	"github.com/glowishii/ecommerce-api/otp"
	"github.com/glowishii/ecommerce-api/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Init DB
	db := initDatabase(log)

	// Auto-migrate all tables
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
		log.Fatal("AutoMigrate failed", "err", err)
	}

	// OTP service + periodic cleanup of expired codes
	otpSvc := otp.NewService(db, otp.NewSMTPMailerFromEnv(), log)
	go otpSvc.RunSweeper(time.Minute)

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", uploadControllers.UploadDir())

	// Setup routes
	routes.SetupRoutes(r, db, otpSvc)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server failed", "err", err)
	}
}

func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:1234"
}

// initDatabase sets up the GORM DB connection
func initDatabase(log *logger.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatal("DB connection failed", "err", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("DB connection failed", "err", err)
	}
	return db
}
