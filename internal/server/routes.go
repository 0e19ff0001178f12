package server

import (
	"log/slog"
	"net/http"

	"social-login/internal/middleware"
	"social-login/internal/relay"
	"social-login/internal/server/handlers"
	"social-login/internal/shared/config"

	"github.com/go-chi/chi/v5"
)

type Routes struct {
	exchanger *relay.Exchanger
}

func NewRoutes(exchanger *relay.Exchanger) *Routes {
	return &Routes{exchanger: exchanger}
}

// Setup wires the relay's endpoints behind its middleware chain.
func (r *Routes) Setup() http.Handler {
	logger := slog.With("component", "routes", "operation", "setup")

	router := chi.NewRouter()

	rateLimiter := middleware.NewRateLimiter(config.GlobalConfig.RateLimit)
	corsMiddleware := middleware.NewCORS()

	router.Use(middleware.RequestID)
	router.Use(rateLimiter.Middleware)

	healthHandler := handlers.NewHealthHandler()
	authenticateHandler := relay.NewAuthenticateHandler(r.exchanger)

	router.Method(http.MethodGet, "/healthz", healthHandler)
	router.Method(http.MethodGet, "/authenticate/{code}", authenticateHandler)

	logger.Info("Routes configured successfully",
		"endpoints", []string{"/healthz", "/authenticate/{code}"},
	)

	return corsMiddleware.Middleware(router)
}
