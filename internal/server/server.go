// Package server provides the HTTP REST API for resume analysis.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aravindh/hirelens/internal/pipeline"
	"github.com/aravindh/hirelens/internal/server/ratelimit"
	"github.com/aravindh/hirelens/internal/types"
)

// ResumeService is the pipeline surface the HTTP layer depends on.
type ResumeService interface {
	ProcessResume(ctx context.Context, data []byte, opts pipeline.ProcessOptions) (types.StoredRecord, uuid.UUID, error)
	Lookup(ctx context.Context, fileName string) (types.StoredRecord, error)
	Assess(ctx context.Context, fileName string) (types.AssessmentResult, error)
}

// Config holds server configuration.
type Config struct {
	Port int
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	service     ResumeService
	rateLimiter *ratelimit.Limiter
}

// Per-stage request deadlines. The pipeline defines none of its own, so a
// hung upstream call surfaces here as a context timeout.
const (
	uploadTimeout     = 2 * time.Minute
	lookupTimeout     = 10 * time.Second
	assessmentTimeout = 1 * time.Minute
)

// New creates a new server instance.
func New(cfg Config, service ResumeService) *Server {
	s := &Server{
		service:     service,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for upload processing
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resumes", s.handleUploadResume)
	mux.HandleFunc("GET /api/resumes/{name}", s.handleGetResume)
	mux.HandleFunc("POST /api/resumes/{name}/assessment", s.handleAssessResume)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	log.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers for the browser front end.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit applies per-client limits before any work happens.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			writeError(w, http.StatusTooManyRequests, StageRequest, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

// extractClientID identifies the client by IP, preferring the proxy header.
func extractClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
