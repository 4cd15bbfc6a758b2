package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "fleetrental-backend/internal/api/http"
	"fleetrental-backend/internal/config"
	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository/postgres"
	"fleetrental-backend/internal/security"
	"fleetrental-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load .env if present; real deployments set environment variables directly
	_ = godotenv.Load()

	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fleet Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.StaffUserRepository, tokenManager)
	carSvc := service.NewCarService(store.CarRepository, store.MaintenanceRepository, store.TransactionRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	dealerSvc := service.NewDealerService(store.DealerRepository)
	rentalSvc := service.NewRentalService(
		store.TransactionRepository,
		store.CarRepository,
		store.CustomerRepository,
		store.RegisterRepository,
	)
	maintenanceSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.CarRepository)
	registerSvc := service.NewRegisterService(store.RegisterRepository)
	alertSvc := service.NewAlertService(store.CarRepository, store.TransactionRepository)
	invoiceSvc := service.NewInvoiceService(
		store.TransactionRepository,
		store.CarRepository,
		store.CustomerRepository,
		store.DealerRepository,
	)

	// Initialize HTTP API
	apiServer := httpapi.NewServer(
		authSvc,
		carSvc,
		customerSvc,
		dealerSvc,
		rentalSvc,
		maintenanceSvc,
		registerSvc,
		alertSvc,
		invoiceSvc,
		tokenManager,
	)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      apiServer.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
