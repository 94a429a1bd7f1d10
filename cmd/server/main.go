package main

import (
	"log"
	"time"

	"beverage_store/internal/config"
	"beverage_store/internal/handlers"
	"beverage_store/internal/redis"
	"beverage_store/internal/services"
	"beverage_store/pkg/backendapi"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize backend API client
	backend := backendapi.NewClient(cfg.BackendAPIURL, time.Duration(cfg.RequestTimeout)*time.Second)

	// Initialize services
	cartService := services.NewCartService(redisClient, time.Duration(cfg.CartTTL)*time.Second)
	pricingService := services.NewPricingService(backend)
	checkoutService := services.NewCheckoutService(cartService, backend)
	authService := services.NewAuthService(backend, redisClient, time.Duration(cfg.SessionTTL)*time.Second)
	tickerService := services.NewTickerService(
		pricingService,
		time.Duration(cfg.TickerRefreshInterval)*time.Second,
		time.Duration(cfg.TickerRefreshJitter)*time.Second,
	)
	tickerService.Start()
	defer tickerService.Stop()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	storeHandler := handlers.NewStoreHandler(backend, pricingService, tickerService)
	cartHandler := handlers.NewCartHandler(cartService, checkoutService, backend)
	adminHandler := handlers.NewAdminHandler(backend, pricingService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/session", authHandler.Session)

		api.GET("/menu", storeHandler.GetMenu)
		api.GET("/menu/:id", storeHandler.GetMenuItem)
		api.GET("/menu/:id/history", storeHandler.GetPriceHistory)
		api.GET("/ticker", storeHandler.GetTicker)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)
		api.DELETE("/cart/items/:id", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)
		api.POST("/checkout", cartHandler.Checkout)
		api.GET("/orders/:id", cartHandler.GetOrder)

		admin := api.Group("/admin", authHandler.AdminRequired())
		{
			admin.GET("/orders", adminHandler.GetOrders)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.POST("/menu", adminHandler.CreateMenuItem)
			admin.PATCH("/menu/:id", adminHandler.UpdateMenuItem)
			admin.DELETE("/menu/:id", adminHandler.DeleteMenuItem)
			admin.GET("/menu/:id/history", adminHandler.GetCoefficientHistory)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
