package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/arblack/trade-tracker/internal/api"
	"github.com/arblack/trade-tracker/internal/auth"
	"github.com/arblack/trade-tracker/internal/config"
	"github.com/arblack/trade-tracker/internal/database"
	"github.com/arblack/trade-tracker/internal/repository"
	"github.com/arblack/trade-tracker/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	itemRepo := repository.NewItemRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	wealthRepo := repository.NewWealthRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	// Create services
	tokenIssuer, err := auth.NewTokenIssuer(cfg.Session.Key, cfg.Session.TTL)
	if err != nil {
		log.Fatalf("Failed to initialize session tokens: %v", err)
	}

	systemService := service.NewSystemService(db)
	authService := service.NewAuthService(userRepo, tokenIssuer)
	itemService := service.NewItemService(itemRepo)
	profitService := service.NewProfitService(db, transactionRepo)
	transactionService := service.NewTransactionService(
		transactionRepo,
		itemService,
		profitService,
	)
	watchlistService := service.NewWatchlistService(
		watchlistRepo,
		transactionRepo,
		itemService,
	)
	wealthService := service.NewWealthService(wealthRepo)
	membershipService := service.NewMembershipService(membershipRepo)
	importService := service.NewImportService(
		transactionRepo,
		itemService,
		profitService,
	)

	// Schedule the nightly full recompute
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Jobs.RecomputeSchedule, func() {
		if err := profitService.RecomputeAll(context.Background()); err != nil {
			log.Printf("Scheduled recompute finished with errors: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule recompute job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Auth:        authService,
		Transaction: transactionService,
		Item:        itemService,
		Watchlist:   watchlistService,
		Wealth:      wealthService,
		Membership:  membershipService,
		Profit:      profitService,
		Import:      importService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
