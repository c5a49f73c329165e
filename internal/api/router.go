package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/itsdelka001/steam-investment-backend/internal/api/handlers"
	custommiddleware "github.com/itsdelka001/steam-investment-backend/internal/api/middleware"
	"github.com/itsdelka001/steam-investment-backend/internal/config"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
)

// Services bundles the service layer handed to the router.
type Services struct {
	System     *service.SystemService
	Investment *service.InvestmentService
	Price      *service.PriceService
	Search     *service.SearchService
	Arbitrage  *service.ArbitrageService
	Currency   *service.CurrencyService
	Settings   *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		investmentHandler := handlers.NewInvestmentHandler(svc.Investment)
		commissionHandler := handlers.NewCommissionHandler(svc.Investment)
		r.Route("/investments", func(r chi.Router) {
			r.Get("/", investmentHandler.Investments)
			r.Post("/", investmentHandler.CreateInvestment)
			r.Get("/summary", investmentHandler.Summary)
			r.Get("/analytics", investmentHandler.Analytics)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
				r.Post("/commissions", commissionHandler.AddCommission)
			})
		})

		r.Route("/commissions/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", commissionHandler.UpdateCommission)
			r.Delete("/", commissionHandler.DeleteCommission)
		})

		priceHandler := handlers.NewPriceHandler(svc.Price)
		r.Get("/current_price", priceHandler.CurrentPrice)
		r.Post("/prices/refresh", priceHandler.RefreshPrices)

		searchHandler := handlers.NewSearchHandler(svc.Search)
		r.Get("/search", searchHandler.Search)
		r.Post("/market_analysis", searchHandler.MarketAnalysis)

		arbitrageHandler := handlers.NewArbitrageHandler(svc.Arbitrage)
		r.Get("/arbitrage-opportunities", arbitrageHandler.Opportunities)

		ratesHandler := handlers.NewRatesHandler(svc.Currency)
		r.Get("/rates", ratesHandler.Rates)

		settingsHandler := handlers.NewSettingsHandler(svc.Settings)
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.GetSettings)
			r.With(custommiddleware.APIKeyMiddleware).Put("/", settingsHandler.UpdateSettings)
		})
	})

	return r
}
