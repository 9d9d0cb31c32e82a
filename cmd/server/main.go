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

	_ "github.com/lib/pq"

	httpapi "rentkart-backend/internal/api/http"
	"rentkart-backend/internal/config"
	"rentkart-backend/internal/jobs"
	"rentkart-backend/internal/logger"
	"rentkart-backend/internal/repository/postgres"
	"rentkart-backend/internal/scheduler"
	"rentkart-backend/internal/security"
	"rentkart-backend/internal/service"
	"rentkart-backend/internal/storage"
	"rentkart-backend/internal/utils"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentKart backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	rates := utils.Rates{
		TaxRate:             cfg.Pricing.TaxRate,
		DepositRate:         cfg.Pricing.DepositRate,
		StandardDeliveryFee: cfg.Pricing.StandardDeliveryFee,
		ExpressDeliveryFee:  cfg.Pricing.ExpressDeliveryFee,
	}

	emailSvc := service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	userSvc := service.NewUserService(store.UserRepository)
	itemSvc := service.NewItemService(store.ItemRepository, store.OrderRepository)
	cartSvc := service.NewCartService(store.CartRepository, store.ItemRepository)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.CartRepository,
		store.ItemRepository,
		store.AddressRepository,
		store.UserRepository,
		store.PaymentRepository,
		noteSvc,
		emailSvc,
		rates,
	)
	addressSvc := service.NewAddressService(store.AddressRepository)
	wishlistSvc := service.NewWishlistService(store.WishlistRepository, store.ItemRepository)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.ItemRepository)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.OrderRepository)
	returnSvc := service.NewReturnService(store.ReturnRequestRepository, store.OrderRepository)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		User:         userSvc,
		Item:         itemSvc,
		Cart:         cartSvc,
		Order:        orderSvc,
		Address:      addressSvc,
		Wishlist:     wishlistSvc,
		Review:       reviewSvc,
		Notification: noteSvc,
		Category:     categorySvc,
		Payment:      paymentSvc,
		Return:       returnSvc,
		Tokens:       tokenManager,
		Storage:      localStorage,
		MaxFileSize:  cfg.Storage.MaxFileSize * 1024 * 1024,
	})

	// In-process scheduler for single-node deployments; cmd/cronjob runs
	// the same jobs externally for multi-node setups.
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email:        emailSvc,
		Notification: noteSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
