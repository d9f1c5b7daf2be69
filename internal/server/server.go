// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/quotes"
)

// ImageEditor produces or edits an image from a prompt and optional source.
type ImageEditor interface {
	EditImage(ctx context.Context, source *ai.SourceImage, prompt string) ([]byte, string, error)
}

// PDFExporter prints a rendered HTML document to PDF bytes.
type PDFExporter interface {
	ExportPDF(ctx context.Context, html string) ([]byte, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	sessions   *SessionStore
	namegen    editor.NameGenerator
	imager     ImageEditor
	exporter   PDFExporter
	rotator    *quotes.Rotator
	aiLimiter  *aiLimiter
}

// Config holds server configuration.
type Config struct {
	Port int
	// SessionTTL evicts sessions idle longer than this. Zero means the
	// default of one hour.
	SessionTTL time.Duration
}

// Deps are the generative and export backends. Nil fields degrade
// gracefully: name generation falls back to the fixed English names, image
// endpoints report unavailability, export falls back to HTML.
type Deps struct {
	NameGen  editor.NameGenerator
	Imager   ImageEditor
	Exporter PDFExporter
}

// New creates a new server instance.
func New(cfg Config, deps Deps) *Server {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	s := &Server{
		sessions:  NewSessionStore(deps.NameGen, ttl),
		namegen:   deps.NameGen,
		imager:    deps.Imager,
		exporter:  deps.Exporter,
		rotator:   quotes.NewRotator(),
		aiLimiter: newAILimiter(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /sessions/{id}/import", s.handleImport)
	mux.HandleFunc("GET /sessions/{id}/export.json", s.handleExportJSON)

	mux.HandleFunc("PATCH /sessions/{id}/personal", s.handleUpdatePersonal)
	mux.HandleFunc("PUT /sessions/{id}/mode", s.handleSetMode)
	mux.HandleFunc("PUT /sessions/{id}/gender", s.handleSetGender)
	mux.HandleFunc("POST /sessions/{id}/name/regenerate", s.handleRegenerateName)

	mux.HandleFunc("POST /sessions/{id}/{collection}", s.handleAddEntity)
	mux.HandleFunc("DELETE /sessions/{id}/{collection}/{entity_id}", s.handleRemoveEntity)
	mux.HandleFunc("PATCH /sessions/{id}/{collection}/{entity_id}", s.handleUpdateEntity)

	mux.HandleFunc("PUT /sessions/{id}/skills/style", s.handleSetSkillStyle)
	mux.HandleFunc("POST /sessions/{id}/skills/tags", s.handleAddSkillTag)
	mux.HandleFunc("PATCH /sessions/{id}/skills/tags", s.handleUpdateSkillTag)
	mux.HandleFunc("DELETE /sessions/{id}/skills/tags", s.handleRemoveSkillTag)
	mux.HandleFunc("PUT /sessions/{id}/skills/text", s.handleSetSkillsText)

	mux.HandleFunc("POST /sessions/{id}/images/{field}", s.handleUploadImage)
	mux.HandleFunc("POST /sessions/{id}/images/{field}/ai", s.handleAIImage)

	mux.HandleFunc("GET /sessions/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /sessions/{id}/resume.pdf", s.handleExportPDF)

	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /quote", s.handleQuote)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF exports hold the connection
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	s.rotator.Stop()
	s.sessions.Stop()
	s.aiLimiter.stop()
	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler chain, used by the HTTP tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleQuote returns the current rotating quote.
func (s *Server) handleQuote(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"quote": s.rotator.Current()})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// clientID extracts the client identifier used for AI rate limiting.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
