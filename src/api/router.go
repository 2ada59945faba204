package api

import (
	"kakeibo-server/src/db"
	"kakeibo-server/src/handlers"
	"kakeibo-server/src/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(store db.Store, healthCache *db.HealthCache, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.Get("/", handlers.Root())
	r.Get("/health", handlers.Health(store, healthCache))

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", handlers.APITest())
	})

	return r
}
