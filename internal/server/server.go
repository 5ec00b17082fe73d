package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stackguides/internal/content"
	"stackguides/internal/db"
	"stackguides/internal/feedback"
	"stackguides/internal/sections"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteName string
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the stackguides content server.
type Server struct {
	cfg        Config
	db         *db.DB
	catalog    *content.Catalog
	feedback   *feedback.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given catalog and database.
func New(cfg Config, database *db.DB, catalog *content.Catalog) *Server {
	s := &Server{
		cfg:      cfg,
		db:       database,
		catalog:  catalog,
		feedback: feedback.NewStore(database),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Feedback service. The paths are a fixed contract with the page script.
	feedback.RegisterRoutes(r, s.feedback)

	// Section scroll sync.
	r.Handle("/ws/sections", sections.NewSyncHandler(s.catalog.Sections))

	s.registerPageRoutes(r)
	s.registerAPIRoutes(r)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Catalog returns the content catalog the server serves.
func (s *Server) Catalog() *content.Catalog { return s.catalog }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("stackguides server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
