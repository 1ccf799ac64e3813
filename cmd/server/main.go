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

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "fleetbill-backend/internal/api/http"
	"fleetbill-backend/internal/config"
	"fleetbill-backend/internal/logger"
	"fleetbill-backend/internal/repository/postgres"
	"fleetbill-backend/internal/security"
	"fleetbill-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local overrides; absence is fine in deployed environments
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FleetBill Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	tripSvc := service.NewTripService(
		store.TripRepository,
		store.VehicleRepository,
		store.SupplierRepository,
		store.AgencyRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
	)
	billingSvc := service.NewBillingService(
		store.TripRepository,
		store.BillingRepository,
		store.RateRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
	)
	rateSvc := service.NewRateService(store.RateRepository)
	masterDataSvc := service.NewMasterDataService(
		store.AgencyRepository,
		store.PlantRepository,
		store.VehicleRepository,
		store.SupplierRepository,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Trip:         tripSvc,
		Billing:      billingSvc,
		Rate:         rateSvc,
		MasterData:   masterDataSvc,
		Notification: noteSvc,
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
