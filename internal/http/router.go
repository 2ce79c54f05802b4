package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/regtech-tools/y9c-dashboard/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", handlers.DashboardPageHandler)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Get("/api/periods", handlers.GetPeriodsHandler)
		r.Get("/api/fields", handlers.GetFieldsHandler)
		r.Get("/api/filings", handlers.GetFilingsHandler)
		r.Get("/api/summary", handlers.GetSummaryHandler)
		r.Post("/api/reload", handlers.ReloadCacheHandler)
		r.Get("/charts/assets.png", handlers.AssetHistogramHandler)
		r.Get("/charts/comparison.png", handlers.PeriodComparisonHandler)
		r.Get("/export/csv", handlers.ExportCSVHandler)
	})

	return r
}
