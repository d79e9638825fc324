// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-client/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-client/internal/pkg/auth"
)

// SetupRoutes wires all mock API routes onto the API group
func SetupRoutes(rg *gin.RouterGroup, cfg *config.Config) error {
	passwords := auth.NewPasswordManager(auth.DefaultBcryptCost)
	users, err := handlers.NewUserStore(passwords)
	if err != nil {
		return err
	}

	setupAuthRoutes(rg, users, cfg)
	setupProductRoutes(rg)
	setupOrderRoutes(rg, cfg)
	setupRecommendationRoutes(rg)
	setupEventRoutes(rg)

	return nil
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, users *handlers.UserStore, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(users, cfg)

	authGroup := rg.Group("/auth")
	{
		// Public auth endpoints
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		// Protected auth endpoints
		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/session", authHandler.Session)
		}
	}
}

// setupProductRoutes sets up product query routes
func setupProductRoutes(rg *gin.RouterGroup) {
	productHandler := handlers.NewProductHandler()

	products := rg.Group("/products")
	{
		products.POST("", productHandler.Search)
		products.POST("/filter", productHandler.Filter)
	}
}

// setupOrderRoutes sets up order history routes
func setupOrderRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler()

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
	}
}

// setupRecommendationRoutes sets up recommendation and deal routes
func setupRecommendationRoutes(rg *gin.RouterGroup) {
	recHandler := handlers.NewRecommendationHandler()

	rg.GET("/recommendations", recHandler.Recommendations)
	rg.POST("/deals/location", recHandler.LocationDeals)
}

// setupEventRoutes sets up telemetry routes
func setupEventRoutes(rg *gin.RouterGroup) {
	eventHandler := handlers.NewEventHandler()

	rg.POST("/events", eventHandler.Record)
}
