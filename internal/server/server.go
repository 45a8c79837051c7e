// Package server provides the HTTP API for résumé analysis.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// Server represents the HTTP server
type Server struct {
	httpServer       *http.Server
	handler          http.Handler
	rateLimiter      *ratelimit.Limiter
	metrics          *Metrics
	maxBodyBytes     int64
	batchConcurrency int
	validateSchema   bool
}

// New creates a server from a validated configuration.
func New(cfg config.Config) (*Server, error) {
	rlConfig, err := ratelimit.LoadConfig(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate limit config: %w", err)
	}

	s := &Server{
		rateLimiter:      ratelimit.NewLimiter(rlConfig),
		metrics:          NewMetrics(),
		maxBodyBytes:     cfg.MaxBodyBytes,
		batchConcurrency: cfg.BatchConcurrency,
		validateSchema:   cfg.ValidateSchema,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /analyze/stream", s.handleAnalyzeStream)
	mux.HandleFunc("POST /analyze/batch", s.handleAnalyzeBatch)
	mux.HandleFunc("GET /taxonomy", s.handleTaxonomy)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	s.handler = s.withRateLimit(s.withLogging(s.metrics.withMetrics(s.withCORS(mux))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging tags each request with an ID and logs its start and finish.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		start := time.Now()
		rec := newStatusRecorder(w)
		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, id)
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %d in %v id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
	})
}

// withRateLimit rejects clients that exceed their token bucket.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestID returns the ID assigned by withLogging, if any.
func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// clientID identifies the caller by remote IP.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 with retry information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		retry := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = retry
		w.Header().Set("Retry-After", strconv.Itoa(retry))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d", info.Limit, info.Remaining)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response with the status HTTPStatus picks.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
