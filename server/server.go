// Package server provides HTTP server setup and lifecycle handling
// for the MediVoice API: middleware configuration, routing and
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medivoice/medivoice-api/config"
	"github.com/medivoice/medivoice-api/handlers"
	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
	"github.com/medivoice/medivoice-api/metrics"
)

// Adapters groups the external service adapters injected into the
// speech endpoints.
type Adapters struct {
	Speaker     interfaces.Speaker
	Transcriber interfaces.Transcriber
	Assistant   interfaces.Assistant
}

// Server represents the HTTP server.
type Server struct {
	server    *http.Server
	router    chi.Router
	dataStore interfaces.DataStore
	adapters  Adapters
	config    *config.Config
}

// NewServer creates a server with all middleware and routes wired.
func NewServer(cfg *config.Config, dataStore interfaces.DataStore, adapters Adapters) *Server {
	router := chi.NewRouter()

	s := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:    router,
		dataStore: dataStore,
		adapters:  adapters,
		config:    cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures the middleware chain.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	if s.config.Env == "prod" {
		// Behind nginx in production; direct hits are blocked before
		// RealIPMiddleware rewrites RemoteAddr
		s.router.Use(BlockDirectAccessMiddleware)
	}
	s.router.Use(RealIPMiddleware)
	if logging.Default != nil {
		s.router.Use(logging.Middleware(logging.Default.Logger))
	}
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(metrics.Middleware)
	s.router.Use(RateLimitHandler)
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	// Voice query path
	s.router.Post("/query", handlers.Query(s.dataStore))

	// Catalog browsing and lookups
	s.router.Get("/database", handlers.ServeAllMedicines(s.dataStore))
	s.router.Get("/database/{pageNumber}", handlers.ServePagedMedicines(s.dataStore))
	s.router.Get("/medicine/{name}", handlers.FindMedicine(s.dataStore))
	s.router.Get("/interactions/{med1}/{med2}", handlers.CheckInteraction(s.dataStore))
	s.router.Get("/brands/{medicine}", handlers.GetBrands(s.dataStore))

	// External adapter endpoints
	s.router.Post("/speak", handlers.Speak(s.adapters.Speaker, s.config.ExternalTimeout))
	s.router.Post("/transcribe", handlers.Transcribe(s.adapters.Transcriber, s.config.ExternalTimeout))
	s.router.Post("/assistant", handlers.Assistant(s.adapters.Assistant, s.config.ExternalTimeout))

	s.router.Get("/health", handlers.HealthCheck(s.dataStore))
	s.router.Handle("/metrics", promhttp.Handler())

	// Voice web UI
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600") // 1 hour
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFile(w, r, "html/index.html")
	})

	s.router.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000") // 1 year
		w.Header().Set("Content-Type", "image/x-icon")
		http.ServeFile(w, r, "html/favicon.ico")
	})
}

// Start begins serving. It blocks until the listener fails or the
// server is shut down.
func (s *Server) Start() error {
	logging.Info("Starting server", "addr", s.server.Addr, "env", s.config.Env)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if closeErr := s.server.Close(); closeErr != nil {
			logging.Error("Server close error", "error", closeErr)
		}
		return err
	}

	logging.Info("Server exited gracefully")
	return nil
}
