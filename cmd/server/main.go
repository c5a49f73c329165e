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

	"github.com/itsdelka001/steam-investment-backend/internal/api"
	"github.com/itsdelka001/steam-investment-backend/internal/config"
	"github.com/itsdelka001/steam-investment-backend/internal/database"
	"github.com/itsdelka001/steam-investment-backend/internal/exchangerate"
	"github.com/itsdelka001/steam-investment-backend/internal/feed"
	"github.com/itsdelka001/steam-investment-backend/internal/market"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	investmentRepo := repository.NewInvestmentRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create upstream clients
	marketClient := market.NewClient(cfg.Market.BaseURL)
	exchangeClient := exchangerate.NewClient(cfg.Exchange.BaseURL)
	feedClient := feed.NewClient(cfg.Market.FeedURL)

	// Create services
	systemService := service.NewSystemService(db)
	settingsService, err := service.NewSettingsService(settingsRepo, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}
	settingsService.OnTokenChange(marketClient.SetToken)

	// Arm the market client with the stored provider token, if any.
	if token, err := settingsService.ProviderToken(); err != nil {
		log.Printf("Failed to load provider token: %v", err)
	} else if token != "" {
		marketClient.SetToken(token)
	}

	currencyService := service.NewCurrencyService(exchangeClient)
	investmentService := service.NewInvestmentService(investmentRepo, commissionRepo, currencyService)
	priceService := service.NewPriceService(marketClient, investmentRepo, settingsService)
	searchService := service.NewSearchService(marketClient)
	arbitrageService := service.NewArbitrageService(feedClient)

	// Seed the conversion table. A failure here is not fatal: conversions
	// no-op until the next successful refresh.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := currencyService.Refresh(startupCtx); err != nil {
		log.Printf("Failed to fetch exchange rates: %v", err)
	}
	cancelStartup()

	// Scheduled jobs: hourly rate refresh and price sweep. The sweep
	// checks the user-toggled auto-refresh flag on every tick.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := currencyService.Refresh(ctx); err != nil {
			log.Printf("Scheduled rate refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule rate refresh: %v", err)
	}
	if _, err := scheduler.AddFunc("@hourly", priceService.RunScheduled); err != nil {
		log.Fatalf("Failed to schedule price sweep: %v", err)
	}
	scheduler.Start()

	// Create router
	router := api.NewRouter(api.Services{
		System:     systemService,
		Investment: investmentService,
		Price:      priceService,
		Search:     searchService,
		Arbitrage:  arbitrageService,
		Currency:   currencyService,
		Settings:   settingsService,
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

	cronCtx := scheduler.Stop()
	<-cronCtx.Done()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
