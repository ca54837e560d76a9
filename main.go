// @title Furnish & Go API
// @version 1.0
// @description Furniture storefront and CMS backend API documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mummysboy/furnishandgo/config"
	"github.com/mummysboy/furnishandgo/controllers/storefront/checkout_controller"
	_ "github.com/mummysboy/furnishandgo/docs"
	"github.com/mummysboy/furnishandgo/middleware"
	"github.com/mummysboy/furnishandgo/routes/cms_routes"
	"github.com/mummysboy/furnishandgo/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiting)
	config.ConnectRedis()

	// Payment gateway client
	gatewayURL := os.Getenv("PAYMENT_GATEWAY_URL")
	apiKey := os.Getenv("PAYMENT_API_KEY")
	if gatewayURL == "" || apiKey == "" {
		log.Fatal("❌ PAYMENT_GATEWAY_URL and PAYMENT_API_KEY must be set")
	}
	checkout_controller.InitPaymentClient(gatewayURL, apiKey)
	log.Println("✅ Payment client initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // invoice downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Admin surface, rate limited
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupCategoryRoutes(adminGroup)
	cms_routes.SetupFurnitureRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
