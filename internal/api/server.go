// Package api exposes the windwizard tool servers over HTTP and MCP
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DecayAI/windwizard/internal/observability"
)

// Version reported by every MCP tool server
const Version = "0.1.0"

// Server wraps an http.Server with the shared timeouts and lifecycle.
// The write timeout is generous because the agent chains several upstream
// calls per request.
type Server struct {
	name       string
	httpServer *http.Server
}

// NewServer creates a named server for the given address and handler
func NewServer(name, addr string, handler http.Handler) *Server {
	return &Server{
		name: name,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Start blocks serving requests until the server is shut down
func (s *Server) Start() error {
	log.Printf("%s listening on %s", s.name, s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server failed: %v", s.name, err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Printf("Shutting down %s", s.name)
	return s.httpServer.Shutdown(ctx)
}

// newToolMux builds a mux with the health and metrics routes every tool
// server shares
func newToolMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

// badRequestError marks validation failures so handlers can answer 400
// instead of blaming the upstream
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string {
	return e.msg
}

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

func isBadRequest(err error) bool {
	var b *badRequestError
	return errors.As(err, &b)
}

// floatParam parses a required float query parameter
func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %s", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %s: %v", name, err)
	}
	return v, nil
}

// floatParamDefault parses an optional float query parameter
func floatParamDefault(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %s: %v", name, err)
	}
	return v, nil
}

// intParam parses an optional int query parameter
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %s: %v", name, err)
	}
	return v, nil
}

// statusRecorder captures the status a handler wrote
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request counts and latency for a tool route
func instrument(m *observability.Metrics, tool string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		outcome := observability.OutcomeOK
		switch {
		case rec.status >= 500:
			outcome = observability.OutcomeError
		case rec.status >= 400:
			outcome = observability.OutcomeClientError
		}
		m.ToolRequests.WithLabelValues(tool, outcome).Inc()
		m.ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	}
}
