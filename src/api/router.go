package api

import (
	"net/http"

	"budget-server/src/config"
	db "budget-server/src/db/sql"
	"budget-server/src/handlers"
	"budget-server/src/ledger"
	"budget-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config, log zerolog.Logger) *chi.Mux {
	store := db.NewTransactionStore(pool)
	engine := ledger.NewEngine(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", handlers.Login(cfg))

		// Reads are open; mutations require a token.
		auth := middleware.JWTAuth(cfg.JWTSecret)

		r.Route("/account", func(r chi.Router) {
			r.With(auth).Post("/", handlers.CreateAccount(pool))
			r.Get("/", handlers.GetAccount(pool))
			r.Get("/all", handlers.GetAllAccounts(pool))
			r.With(auth).Delete("/{id}", handlers.DeleteAccount(pool))
		})

		r.Route("/account-type", func(r chi.Router) {
			r.With(auth).Post("/", handlers.CreateAccountType(pool))
			r.Get("/", handlers.GetAccountType(pool))
			r.Get("/all", handlers.GetAllAccountTypes(pool))
			r.With(auth).Delete("/{id}", handlers.DeleteAccountType(pool))
		})

		r.Route("/bank", func(r chi.Router) {
			r.With(auth).Post("/", handlers.CreateBank(pool))
			r.Get("/", handlers.GetBank(pool))
			r.Get("/all", handlers.GetAllBanks(pool))
			r.With(auth).Delete("/{id}", handlers.DeleteBank(pool))
		})

		r.Route("/category", func(r chi.Router) {
			r.With(auth).Post("/", handlers.CreateCategory(pool))
			r.Get("/", handlers.GetCategory(pool))
			r.Get("/all", handlers.GetAllCategories(pool))
			r.With(auth).Delete("/{id}", handlers.DeleteCategory(pool))
		})

		r.Route("/transaction", func(r chi.Router) {
			r.With(auth).Post("/", handlers.CreateTransaction(store))
			r.Get("/", handlers.GetTransactions(engine))
			r.With(auth).Delete("/{id}", handlers.DeleteTransaction(store))
		})
	})

	return r
}
