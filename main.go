package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"

	"github.com/walletapp/backend/api"
	"github.com/walletapp/backend/db"
	_ "github.com/walletapp/backend/docs"
	"github.com/walletapp/backend/middleware"
	"github.com/walletapp/backend/utils/logger"
)

// 50MB JSON payload ceiling
const maxBodyBytes = 50 << 20

const (
	defaultRateLimitMax    = 100
	defaultRateLimitWindow = time.Minute
)

// @title Wallet Ledger API
// @version 1.0
// @description Personal-finance transaction ledger.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, reading environment variables")
	}

	connStr := os.Getenv("DATABASE_URL")
	storage, err := db.NewStorage(connStr)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer storage.Close()

	handler := api.NewHandler(storage)
	limiter := middleware.NewFixedWindowLimiter(rateLimitMax(), rateLimitWindow())

	r := gin.Default()

	// Admission control runs first so abusive traffic never pays the
	// parsing cost; then the body ceiling, then CORS.
	r.Use(middleware.RateLimit(limiter))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	transactions := r.Group("/api/v1/transactions")
	transactions.POST("/create", handler.CreateTransaction)
	transactions.GET("/:userId", handler.GetTransactionsByUser)
	transactions.DELETE("/delete/:id", handler.DeleteTransaction)
	transactions.GET("/summary/:userId", handler.GetSummary)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infof("Server is up and running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

func rateLimitMax() int {
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if max, err := strconv.Atoi(v); err == nil && max > 0 {
			return max
		}
		logger.Infof("Invalid RATE_LIMIT_MAX %q, using default %d", v, defaultRateLimitMax)
	}
	return defaultRateLimitMax
}

func rateLimitWindow() time.Duration {
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if window, err := time.ParseDuration(v); err == nil && window > 0 {
			return window
		}
		logger.Infof("Invalid RATE_LIMIT_WINDOW %q, using default %s", v, defaultRateLimitWindow)
	}
	return defaultRateLimitWindow
}
