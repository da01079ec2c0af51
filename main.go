package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"catalog-svc/config"
	"catalog-svc/database"
	"catalog-svc/handlers"
	"catalog-svc/middleware"
	"catalog-svc/store"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration; serving without the store is not recoverable
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize MongoDB
	client, err := database.Connect(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	db := client.Database(cfg.DBName)
	productStore := store.NewMongoProductStore(db)
	itemStore := store.NewMongoItemStore(db)

	// Initialize OpenTelemetry
	shutdownTracing, err := middleware.InitTracing("catalog-svc")
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	// OpenTelemetry middleware must be first to extract trace context
	router.Use(otelgin.Middleware("catalog-svc"))
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	// Informational endpoints
	router.GET("/", handlers.Root)
	router.GET("/version", handlers.Version)
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler())

	// Product endpoints
	productHandler := handlers.NewProductHandler(productStore, logger)
	router.GET("/api/products", productHandler.ListProducts)
	router.GET("/api/products/:id", productHandler.GetProduct)
	router.POST("/api/products", productHandler.CreateProduct)
	router.PUT("/api/products/:id", productHandler.UpdateProduct)
	router.DELETE("/api/products/:id", productHandler.DeleteProduct)

	// Item endpoints
	itemHandler := handlers.NewItemHandler(itemStore, logger)
	router.GET("/api/items", itemHandler.ListItems)
	router.GET("/api/items/:id", itemHandler.GetItem)
	router.POST("/api/items", itemHandler.CreateItem)
	router.PUT("/api/items/:id", itemHandler.ReplaceItem)
	router.PATCH("/api/items/:id", itemHandler.PatchItem)
	router.DELETE("/api/items/:id", itemHandler.DeleteItem)

	// Everything else is a 404
	router.NoRoute(handlers.NotFound)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Catalog service started", zap.String("port", cfg.Port))

	gracefulShutdown(srv, client, shutdownTracing, logger)
}

// gracefulShutdown handles SIGINT/SIGTERM and shuts down all services gracefully
func gracefulShutdown(
	srv *http.Server,
	client *mongo.Client,
	shutdownTracing func(),
	logger *zap.Logger,
) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received. Exiting...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server forced to shutdown", zap.Error(err))
	} else {
		logger.Info("HTTP server stopped gracefully")
	}

	// Close MongoDB client
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	} else {
		logger.Info("MongoDB connection closed gracefully")
	}

	// Shutdown tracing
	shutdownTracing()
	logger.Info("Catalog service exited gracefully")
}
