package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"storefront-service/internal/catalog"
	"storefront-service/internal/config"
	"storefront-service/internal/handlers"
	"storefront-service/internal/middleware"
	"storefront-service/internal/store"
)

// @title Storefront Catalog API
// @version 1.0.0
// @description Static storefront catalog service: normalized product views, category browsing, and WhatsApp ordering

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Load the catalog snapshot. Admin edits mutate this in memory only;
	// nothing is written back to the file.
	catalogStore := store.NewCatalogStore(cfg.WhatsAppNumber, logger)
	if err := catalogStore.LoadFromFile(cfg.CatalogPath); err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}

	// Initialize the normalization/classification core
	normalizer := catalog.NewNormalizer(cfg.PlaceholderImage)
	classifier := catalog.NewClassifier(catalog.DefaultTaxonomy(), catalog.DefaultOverrides())

	// Initialize handlers
	storefrontHandler := handlers.NewStorefrontHandler(catalogStore, normalizer, classifier, cfg)
	adminHandler := handlers.NewAdminHandler(catalogStore)
	importHandler := handlers.NewImportHandler(catalogStore)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)

	// API routes
	v1 := router.Group("/api/v1")
	{
		storefront := v1.Group("/storefront")
		{
			storefront.GET("/products", storefrontHandler.GetProducts)
			storefront.GET("/products/:id", storefrontHandler.GetProduct)
			storefront.GET("/categories", storefrontHandler.GetCategories)
			storefront.GET("/categories/:label/products", storefrontHandler.GetCategoryProducts)
			storefront.POST("/orders/whatsapp", storefrontHandler.CreateWhatsAppOrder)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.POST("/products/import", importHandler.ImportProducts)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings/whatsapp", adminHandler.UpdateWhatsAppNumber)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Storefront service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Storefront service stopped")
}
