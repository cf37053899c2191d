// Package main provides the main entry point for the Kisan Yojana scheme catalog service
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/krishisetu/kisan-yojana/app/handlers"
	"github.com/krishisetu/kisan-yojana/app/middleware"
	"github.com/krishisetu/kisan-yojana/app/router"
	"github.com/krishisetu/kisan-yojana/app/services"
	businessflow "github.com/krishisetu/kisan-yojana/business_flow"
	"github.com/krishisetu/kisan-yojana/config"
	_ "github.com/krishisetu/kisan-yojana/docs"
	"github.com/krishisetu/kisan-yojana/repository"
)

// Application represents the main application structure
type Application struct {
	router *router.FiberRouter
	config *config.ProductionConfig
	server *fiber.App
}

func main() {
	log.Println("Starting Kisan Yojana application...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	config.SetupLogger(&cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	// Initialize database
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	schemeRepo := repository.NewSchemeRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Initialize flows
	schemeFlow := businessflow.NewSchemeFlow(schemeRepo)
	adminSchemeFlow := businessflow.NewAdminSchemeFlow(schemeRepo)
	adminAuthFlow := businessflow.NewAdminAuthFlow(adminRepo, tokenService, cfg.Security.BcryptCost)
	adminManagementFlow := businessflow.NewAdminManagementFlow(adminRepo, cfg.Security.BcryptCost)

	// Initialize handlers; development deployments expose raw error detail
	isDevelopment := cfg.IsDevelopment()
	schemeHandler := handlers.NewSchemeHandler(schemeFlow, isDevelopment)
	schemeAdminHandler := handlers.NewSchemeAdminHandler(adminSchemeFlow, isDevelopment)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthFlow, isDevelopment)
	adminMgmtHandler := handlers.NewAdminManagementHandler(adminManagementFlow, isDevelopment)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService, adminRepo)

	// Initialize router
	appRouter := router.NewFiberRouter(
		cfg,
		authMiddleware,
		schemeHandler,
		schemeAdminHandler,
		adminAuthHandler,
		adminMgmtHandler,
	)

	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router: fiberRouter,
		config: cfg,
		server: fiberRouter.GetApp(),
	}

	return application, nil
}
