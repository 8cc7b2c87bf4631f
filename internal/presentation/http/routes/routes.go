package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nasaem/pos-api/internal/config"
	"github.com/nasaem/pos-api/internal/presentation/http/handler"
	"github.com/nasaem/pos-api/internal/presentation/http/middleware"
	"github.com/nasaem/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Sale    *handler.SaleHandler
	Report  *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.Me)

		// Catalog
		protected.GET("/products", h.Catalog.List)
		protected.GET("/products/categories", h.Catalog.Categories)

		// Sales history
		protected.GET("/sales", h.Sale.List)
		protected.POST("/sales", h.Sale.Create)
		protected.DELETE("/sales", h.Sale.Clear)
		protected.DELETE("/sales/:id", h.Sale.Delete)
		protected.GET("/sales/summary", h.Report.Summary)
	}

	return router
}
