package api

import (
	"net/http"

	_ "fxdelta/docs"
	"fxdelta/internal/delta/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	swagger "github.com/swaggo/http-swagger"
	"github.com/ulule/limiter/v3"
)

type RouterOptions struct {
	AllowedOrigins []string
	// Limiter throttles the API routes per client IP; nil disables it.
	Limiter *limiter.Limiter
}

func NewRouter(deltaHandler *handler.Handler, opts RouterOptions) *chi.Mux {
	router := chi.NewRouter()
	router.Use(RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(RateLimit(opts.Limiter))
		}
		r.Post("/Currency/GetCurrencyDeltas", deltaHandler.GetCurrencyDeltas)
	})
	return router
}
