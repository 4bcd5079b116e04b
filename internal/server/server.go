// Package server provides the HTTP REST API for the mock interview service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/db"
	"github.com/jonathan/smarthire/internal/extraction"
	"github.com/jonathan/smarthire/internal/report"
	"github.com/jonathan/smarthire/internal/session"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server

	store     *session.Store
	pipeline  *session.Pipeline
	extractor *extraction.Extractor
	csvLog    *report.CSVLog

	db         *db.DB
	admin      *config.AdminConfig
	jwtService *JWTService
}

// Config holds server configuration
type Config struct {
	Port int
}

// Deps holds the collaborators the server routes requests to. Store,
// Pipeline, Extractor and CSVLog are required; the rest may be nil, which
// disables the corresponding surface.
type Deps struct {
	Store     *session.Store
	Pipeline  *session.Pipeline
	Extractor *extraction.Extractor
	CSVLog    *report.CSVLog

	DB         *db.DB
	Admin      *config.AdminConfig
	JWTService *JWTService
}

// New creates a new server instance
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		store:      deps.Store,
		pipeline:   deps.Pipeline,
		extractor:  deps.Extractor,
		csvLog:     deps.CSVLog,
		db:         deps.DB,
		admin:      deps.Admin,
		jwtService: deps.JWTService,
	}

	// Setup router
	mux := http.NewServeMux()

	// Interview session endpoints
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("POST /sessions/{id}/role", s.handleChooseRole)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("GET /sessions/{id}/questions", s.handleQuestions)
	mux.HandleFunc("POST /sessions/{id}/answers", s.handleRecordAnswer)
	mux.HandleFunc("POST /sessions/{id}/submit", s.handleSubmit)
	mux.HandleFunc("GET /sessions/{id}/report", s.handleReport)
	mux.HandleFunc("GET /sessions/{id}/jobs", s.handleJobs)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	// Admin endpoints
	mux.HandleFunc("POST /admin/login", s.handleAdminLogin)
	mux.HandleFunc("GET /admin/reports", s.handleAdminReports)

	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generative scoring can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured routing stack, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
