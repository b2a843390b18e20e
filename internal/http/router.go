package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	Catalog  *CatalogHandler
	Checkout *CheckoutHandler
	Seed     *SeedHandler
	Diag     *DiagHandler
	Logger   zerolog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "LuxTime Backend Running"})
	})
	r.Get("/test", deps.Diag.Status)
	r.Post("/seed", deps.Seed.Seed)

	r.Get("/watches", deps.Catalog.ListWatches)
	r.Get("/watches/{slug}", deps.Catalog.GetWatch)
	r.Get("/blog", deps.Catalog.ListPosts)
	r.Get("/blog/{slug}", deps.Catalog.GetPost)

	r.Post("/checkout", deps.Checkout.Checkout)

	return r
}
