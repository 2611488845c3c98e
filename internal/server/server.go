package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wellbotdev/wellbot/internal/analytics"
	"github.com/wellbotdev/wellbot/internal/auth"
	"github.com/wellbotdev/wellbot/internal/config"
	"github.com/wellbotdev/wellbot/internal/db"
	"github.com/wellbotdev/wellbot/internal/dialogue"
	"github.com/wellbotdev/wellbot/internal/feedback"
	"github.com/wellbotdev/wellbot/internal/history"
)

// Server is the wellbot dashboard/API server.
type Server struct {
	cfg        *config.Config
	db         *db.DB
	users      *auth.Store
	chats      *history.Store
	reactions  *feedback.Store
	stats      *analytics.Service
	manager    *dialogue.Manager
	admins     map[string]bool
	kbMu       sync.Mutex // serializes knowledge base edits (single writer)
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over an already-wired dialogue manager and database.
func New(cfg *config.Config, database *db.DB, manager *dialogue.Manager) *Server {
	s := &Server{
		cfg:       cfg,
		db:        database,
		users:     auth.NewStore(database),
		chats:     history.NewStore(database),
		reactions: feedback.NewStore(database),
		stats:     analytics.NewService(database),
		manager:   manager,
		admins:    make(map[string]bool),
	}
	for _, name := range cfg.AdminUsers {
		s.admins[strings.ToLower(name)] = true
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
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public account routes.
	r.Post("/api/register", s.handleRegister)
	r.Post("/api/login", s.handleLogin)

	// Authenticated user routes.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/api/logout", s.handleLogout)
		r.Get("/api/profile", s.handleGetProfile)
		r.Put("/api/profile", s.handleUpdateProfile)
		r.Post("/api/chat", s.handleChat)
		r.Get("/api/chat/history", s.handleOwnHistory)
		r.Post("/api/feedback", s.handleSubmitFeedback)
		r.Get("/api/kb", s.handleListKB)
	})

	// Admin routes.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireAdmin)
		r.Get("/api/admin/users", s.handleListUsers)
		r.Get("/api/admin/chats", s.handleAllHistory)
		r.Get("/api/admin/feedback", s.handleListFeedback)
		r.Get("/api/admin/analytics", s.handleAnalytics)
		r.Post("/api/kb", s.handleAddKB)
		r.Put("/api/kb/{name}", s.handleUpdateKB)
		r.Delete("/api/kb/{name}", s.handleDeleteKB)
	})

	// Live chat over WebSocket.
	r.Get("/ws/chat", s.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

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

	log.Printf("wellbot server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
