package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/checkout"
	orderControllers "github.com/aaban-saad/nextgen-circuits-api/controllers/order"
	"github.com/aaban-saad/nextgen-circuits-api/courier"
	"github.com/aaban-saad/nextgen-circuits-api/logger"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/aaban-saad/nextgen-circuits-api/routes"
	"github.com/aaban-saad/nextgen-circuits-api/shipping"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()
	zap.ReplaceGlobals(logger.Log)

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.CartEntry{},
		&models.WishlistEntry{},
		&models.Order{},
		&models.OrderItem{},
		&models.Discount{},
		&models.Review{},
		&models.PopupBanner{},
		&models.RestrictedURL{},
		&models.DeliveryDetail{},
		&models.CheckoutIntent{},
	); err != nil {
		logger.Log.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Optional product cache
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Log.Warn("Redis unreachable, running without product cache", zap.Error(err))
			rdb = nil
		}
	}

	// Checkout orchestrator + admin live order feed
	feed := orderControllers.NewFeed()
	checkoutSvc := checkout.NewService(checkout.NewGormStore(db), feed, shipping.LocalCity())

	// Abort checkouts that crashed mid-sequence before taking traffic
	if err := checkoutSvc.ReconcileIntents(context.Background()); err != nil {
		logger.Log.Fatal("checkout intent reconciliation failed", zap.Error(err))
	}

	// Courier integration is optional; without credentials the dispatch
	// endpoint is simply not registered
	var courierClient *courier.Client
	if cfg, err := courier.ConfigFromEnv(); err == nil {
		courierClient = courier.NewClient(cfg)
	} else {
		logger.Log.Warn("courier disabled", zap.Error(err))
	}

	// Gin setup
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded banner images
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads/banners"
	}
	r.Static("/uploads/banners", uploadDir)

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Redis:    rdb,
		Checkout: checkoutSvc,
		Courier:  courierClient,
		Feed:     feed,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Log.Fatal("DB connection failed", zap.Error(err))
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
		logger.Log.Fatal("failed to connect DB", zap.Error(err))
	}
	return db
}
