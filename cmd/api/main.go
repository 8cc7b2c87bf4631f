package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nasaem/pos-api/internal/application/service"
	"github.com/nasaem/pos-api/internal/config"
	"github.com/nasaem/pos-api/internal/infrastructure/database"
	"github.com/nasaem/pos-api/internal/infrastructure/repository"
	"github.com/nasaem/pos-api/internal/presentation/http/handler"
	"github.com/nasaem/pos-api/internal/presentation/http/routes"
	"github.com/nasaem/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the sales store (Postgres or embedded SQLite) and migrate eagerly,
	// before the first request can arrive.
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open sales store: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(db)

	// Initialize services
	saleService := service.NewSaleService(saleRepo, cfg.App.Location())
	reportService := service.NewReportService(saleService)
	catalogService := service.NewCatalogService()
	authService := service.NewAuthService(&cfg.Auth, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Sale:    handler.NewSaleHandler(saleService),
		Report:  handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s | store driver: %s", cfg.App.Env, cfg.Store.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
