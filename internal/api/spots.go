package api

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/usecases"
)

// SpotServer serves the kitesurf spot finder over HTTP and MCP
type SpotServer struct {
	spots   *usecases.SpotUseCase
	metrics *observability.Metrics
}

// NewSpotServer creates a spot tool server backed by the spot database
func NewSpotServer(spots *usecases.SpotUseCase, metrics *observability.Metrics) *SpotServer {
	return &SpotServer{spots: spots, metrics: metrics}
}

// Handler builds the HTTP handler with the spot routes, the MCP endpoint
// and the shared health and metrics routes
func (s *SpotServer) Handler() http.Handler {
	mux := newToolMux()
	mux.HandleFunc("GET /spots", instrument(s.metrics, "list_spots", s.handleListSpots))
	mux.HandleFunc("GET /spots/near", instrument(s.metrics, "get_spots_near", s.handleSpotsNear))
	mountMCP(mux, s.MCPServer())
	return mux
}

func (s *SpotServer) handleListSpots(w http.ResponseWriter, r *http.Request) {
	spots, err := s.spots.ListSpots()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, spots)
}

func (s *SpotServer) handleSpotsNear(w http.ResponseWriter, r *http.Request) {
	lat, err := floatParam(r, "lat")
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	lon, err := floatParam(r, "lon")
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	maxKm, err := floatParamDefault(r, "max_km", usecases.DefaultMaxKm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	nearby, err := s.spots.FindSpotsNear(lat, lon, maxKm)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, nearby)
}

// MCPServer exposes get_spots_near as an MCP tool
func (s *SpotServer) MCPServer() *server.MCPServer {
	srv := newMCPServer("spot-db-tool")

	tool := mcp.NewTool("get_spots_near",
		mcp.WithDescription("Find kitesurf spots within a radius of a location, closest first"),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in decimal degrees")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude in decimal degrees")),
		mcp.WithNumber("max_km", mcp.DefaultNumber(usecases.DefaultMaxKm), mcp.Description("Search radius in kilometers")),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		lat, ok := floatArg(args, "lat")
		if !ok {
			return nil, badRequest("lat is required")
		}
		lon, ok := floatArg(args, "lon")
		if !ok {
			return nil, badRequest("lon is required")
		}
		maxKm := floatArgDefault(args, "max_km", usecases.DefaultMaxKm)

		nearby, err := s.spots.FindSpotsNear(lat, lon, maxKm)
		if err != nil {
			return nil, err
		}
		return jsonResult(map[string][]entities.NearbySpot{"spots": nearby})
	})
	return srv
}
