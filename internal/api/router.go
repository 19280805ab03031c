package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arblack/trade-tracker/internal/api/handlers"
	custommiddleware "github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/config"
	"github.com/arblack/trade-tracker/internal/service"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	System      *service.SystemService
	Auth        *service.AuthService
	Transaction *service.TransactionService
	Item        *service.ItemService
	Watchlist   *service.WatchlistService
	Wealth      *service.WealthService
	Membership  *service.MembershipService
	Profit      *service.ProfitService
	Import      *service.ImportService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	auth := custommiddleware.NewAuthenticator(services.Auth)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Session namespace
		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(services.Auth)
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.With(auth.RequireUser).Get("/me", authHandler.Me)
			r.With(auth.RequireUser).Post("/logout", authHandler.Logout)
		})

		// Everything below requires a session
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)

			r.Route("/transaction", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(services.Transaction)
				r.Get("/", transactionHandler.ListTransactions)
				r.Post("/", transactionHandler.CreateTransaction)
				r.Get("/recent", transactionHandler.RecentTransactions)
				r.Get("/summary", transactionHandler.ItemSummary)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", transactionHandler.GetTransaction)
					r.Put("/", transactionHandler.UpdateTransaction)
					r.Delete("/", transactionHandler.DeleteTransaction)
				})
			})

			r.Route("/alias", func(r chi.Router) {
				itemHandler := handlers.NewItemHandler(services.Item)
				r.Get("/", itemHandler.ListAliases)
				r.Post("/", itemHandler.CreateAlias)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", itemHandler.UpdateAlias)
					r.Delete("/", itemHandler.DeleteAlias)
				})
			})

			r.Route("/item", func(r chi.Router) {
				itemHandler := handlers.NewItemHandler(services.Item)
				r.Put("/accumulation-price", itemHandler.SetAccumulationPrice)
				r.Put("/target-sell-price", itemHandler.SetTargetSellPrice)
			})

			r.Route("/watchlist", func(r chi.Router) {
				watchlistHandler := handlers.NewWatchlistHandler(services.Watchlist)
				r.Get("/", watchlistHandler.ListWatchlist)
				r.Post("/", watchlistHandler.CreateWatchlistEntry)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Delete("/", watchlistHandler.DeleteWatchlistEntry)
				})
			})

			r.Route("/wealth", func(r chi.Router) {
				wealthHandler := handlers.NewWealthHandler(services.Wealth)
				r.Get("/", wealthHandler.ListWealth)
				r.Post("/", wealthHandler.CreateWealthRecord)
				r.Get("/years", wealthHandler.WealthYears)
				r.Get("/series", wealthHandler.WealthSeries)
				r.Post("/delete", wealthHandler.DeleteWealthRecords)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", wealthHandler.UpdateWealthRecord)
				})
			})

			r.Route("/profit", func(r chi.Router) {
				profitHandler := handlers.NewProfitHandler(services.Profit, services.Item)
				r.Get("/", profitHandler.GlobalProfit)
				r.Get("/series", profitHandler.ProfitSeries)
			})

			membershipHandler := handlers.NewMembershipHandler(services.Membership)
			r.Get("/membership", membershipHandler.GetMembership)

			importHandler := handlers.NewImportHandler(services.Import)
			r.Post("/import/csv", importHandler.ImportCSV)

			// Admin namespace
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				userHandler := handlers.NewUserHandler(services.Auth)
				r.Get("/users", userHandler.ListUsers)
				r.With(custommiddleware.ValidateUUIDMiddleware).Post("/users/{uuid}/ban", userHandler.BanUser)

				r.Put("/membership", membershipHandler.SetMembership)

				profitHandler := handlers.NewProfitHandler(services.Profit, services.Item)
				r.Post("/recompute", profitHandler.Recompute)
			})
		})
	})

	return r
}
