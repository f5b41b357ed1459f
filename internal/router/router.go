package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anonboard-dev/anonboard/internal/config"
	"github.com/anonboard-dev/anonboard/internal/handler"
	"github.com/anonboard-dev/anonboard/internal/jwt"
	mw "github.com/anonboard-dev/anonboard/internal/middleware"
	"github.com/anonboard-dev/anonboard/internal/middleware/metrics"
)

// New creates and configures the chi router with all the routes.
func New(h *handler.Handler, jwtService jwt.JwtService, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Owner-Token"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/threads", func(r chi.Router) {
		r.Get("/", h.ListThreads)
		// creation never requires authentication; a valid bearer token,
		// when present, supplies the authorName fallback
		r.With(mw.OptionalAuth(jwtService)).Post("/", h.CreateThread)
		r.With(mw.OptionalAuth(jwtService)).Post("/{thread}/replies", h.CreateReply)
		r.Delete("/{thread}", h.DeleteThread)
		r.Delete("/{thread}/replies/{reply}", h.DeleteReply)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
		r.With(mw.RequireAuth(jwtService)).Get("/me", h.Me)
	})

	return r
}
