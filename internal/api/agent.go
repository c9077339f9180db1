package api

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/usecases"
)

//go:embed index.html
var uiFS embed.FS

var indexTemplate = template.Must(template.ParseFS(uiFS, "index.html"))

// Defaults shown in the UI, centred on the Øresund
const (
	DefaultUILat = 55.66
	DefaultUILon = 12.56
)

// AgentServer serves the WindWizard UI and the stoke API. Unlike the
// tool servers it exposes no MCP endpoint, the agent consumes tools
// rather than providing them.
type AgentServer struct {
	stoke          *usecases.StokeUseCase
	alertThreshold int
	metrics        *observability.Metrics
}

// NewAgentServer creates the agent server over the stoke use case
func NewAgentServer(stoke *usecases.StokeUseCase, alertThreshold int, metrics *observability.Metrics) *AgentServer {
	return &AgentServer{stoke: stoke, alertThreshold: alertThreshold, metrics: metrics}
}

// Handler builds the HTTP handler with the UI, the stoke API and the
// shared health and metrics routes
func (s *AgentServer) Handler() http.Handler {
	mux := newToolMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("POST /api/stoke", instrument(s.metrics, "compute_stoke", s.handleStoke))
	return mux
}

type indexData struct {
	Lat            float64
	Lon            float64
	Hours          int
	MaxHours       int
	AlertThreshold int
}

func (s *AgentServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := indexData{
		Lat:            DefaultUILat,
		Lon:            DefaultUILon,
		Hours:          usecases.DefaultStokeHours,
		MaxHours:       usecases.MaxStokeHours,
		AlertThreshold: s.alertThreshold,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render index page: %v", err)
	}
}

func (s *AgentServer) handleStoke(w http.ResponseWriter, r *http.Request) {
	var req entities.StokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	report, err := s.stoke.ComputeStoke(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
