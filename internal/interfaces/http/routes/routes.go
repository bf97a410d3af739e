// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/shopping-cart-backend/internal/config"
	"github.com/your-org/shopping-cart-backend/internal/domain/cart"
	"github.com/your-org/shopping-cart-backend/internal/domain/order"
	"github.com/your-org/shopping-cart-backend/internal/domain/product"
	"github.com/your-org/shopping-cart-backend/internal/domain/user"
	"github.com/your-org/shopping-cart-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/shopping-cart-backend/internal/interfaces/http/handlers"
	"github.com/your-org/shopping-cart-backend/internal/interfaces/http/middleware"
	"github.com/your-org/shopping-cart-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// SetupRoutes wires stores, services and handlers onto the API group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	// Stores
	userStore := postgres.NewUserStore(db)
	productStore := postgres.NewProductStore(db)
	cartStore := postgres.NewCartStore(db)
	orderStore := postgres.NewOrderStore(db)
	txManager := postgres.NewTxManager(db)

	// Services
	passwords := auth.NewPasswordManager(cfg)
	userService := user.NewService(userStore, passwords)
	productService := product.NewService(productStore)
	cartService := cart.NewService(cartStore, productStore)
	orderService := order.NewService(orderStore, cartStore, productStore, txManager)

	// Auth plumbing
	jwtManager := auth.NewJWTManager(cfg)
	blacklist := auth.NewBlacklist(redisClient)
	requireAuth := middleware.AuthMiddleware(cfg, blacklist)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, jwtManager, blacklist, cfg)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(requireAuth)
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.GetProfile)
		}
	}

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	cartGroup := rg.Group("/cart")
	cartGroup.Use(requireAuth)
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.DELETE("/items/:productId", cartHandler.RemoveFromCart)
		cartGroup.GET("/total", cartHandler.GetCartTotal)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	orders := rg.Group("/orders")
	orders.Use(requireAuth)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.PUT("/:id/cancel", orderHandler.CancelOrder)
	}
}
