package main

import (
	"log"

	"hardware_store/internal/auth"
	"hardware_store/internal/config"
	"hardware_store/internal/database"
	"hardware_store/internal/handlers"
	"hardware_store/internal/middleware"
	"hardware_store/internal/redis"
	"hardware_store/internal/repository"
	"hardware_store/internal/services"
	"hardware_store/internal/validation"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis (refresh-token blacklist)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize token manager and validator
	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	validate := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	jobSiteRepo := repository.NewJobSiteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokens, redisClient)
	productService := services.NewProductService(productRepo)
	notificationService := services.NewNotificationService(cfg)
	orderService := services.NewOrderService(orderRepo, notificationService)
	jobSiteService := services.NewJobSiteService(jobSiteRepo, cfg.DefaultPhoneCountryCode)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, validate)
	productHandler := handlers.NewProductHandler(productService, validate)
	orderHandler := handlers.NewOrderHandler(orderService, validate)
	jobSiteHandler := handlers.NewJobSiteHandler(jobSiteService, validate)
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.Refresh)
			authRoutes.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
			authRoutes.GET("/profile", authMiddleware.RequireAuth(), authHandler.GetProfile)
			authRoutes.PUT("/profile", authMiddleware.RequireAuth(), authHandler.UpdateProfile)
		}

		api.GET("/products", productHandler.List)
		api.POST("/products/create", authMiddleware.RequireAuth(), productHandler.Create)
		api.GET("/products/:slug", productHandler.Detail)
		api.PUT("/products/:slug/update", authMiddleware.RequireAuth(), productHandler.Update)
		api.DELETE("/products/:slug/delete", authMiddleware.RequireAuth(), productHandler.Delete)
		api.POST("/products/:slug/reviews", authMiddleware.RequireAuth(), productHandler.CreateReview)
		api.GET("/categories", productHandler.ListCategories)
		api.GET("/brands", productHandler.ListBrands)
		api.GET("/warehouses", productHandler.ListWarehouses)

		orderRoutes := api.Group("/orders")
		{
			orderRoutes.POST("/create", authMiddleware.OptionalAuth(), orderHandler.Create)
			orderRoutes.GET("/list", authMiddleware.RequireAuth(), orderHandler.List)
			orderRoutes.GET("/:order_number", authMiddleware.RequireAuth(), orderHandler.Detail)
			orderRoutes.POST("/:order_number/update-status", authMiddleware.RequireAuth(), orderHandler.UpdateStatus)
		}

		shippingRoutes := api.Group("/shipping")
		{
			shippingRoutes.POST("/job-sites", authMiddleware.OptionalAuth(), jobSiteHandler.Create)
			shippingRoutes.GET("/job-sites", authMiddleware.RequireAuth(), jobSiteHandler.List)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
