// Package api provides the HTTP API server and handlers for the TanaMap application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tanamapapp/tanamap-server/internal/ratelimit"
	"github.com/tanamapapp/tanamap-server/internal/session"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	state           *session.State
	services        *Services
	router          *chi.Mux
	api             huma.API
	logger          *slog.Logger
	mutationLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, state *session.State, services *Services, logger *slog.Logger) *Server {
	s := &Server{
		store:           st,
		state:           state,
		services:        services,
		router:          chi.NewRouter(),
		logger:          logger,
		mutationLimiter: NewRateLimiter(600, 100),
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("TanaMap API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerCategoryRoutes()
	s.registerFloorRoutes()
	s.registerSlotRoutes()
	s.registerViewRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-owned resources.
func (s *Server) Close() {
	s.mutationLimiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The editor frontend is served from a different origin during development.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.router.Use(MutationRateLimitMiddleware(s.mutationLimiter, s.logger))
}
