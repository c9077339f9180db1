package api

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/integration/stormglass"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/usecases"
)

// Default windows used when the caller does not ask for one
const (
	DefaultTideHours = 48
	DefaultTideDays  = 3
)

// TideServer serves sea levels and tide extremes over HTTP and MCP
type TideServer struct {
	tides   *usecases.TideUseCase
	metrics *observability.Metrics
}

// NewTideServer creates a tide tool server backed by Stormglass with a
// synthetic fallback
func NewTideServer(tides *usecases.TideUseCase, metrics *observability.Metrics) *TideServer {
	return &TideServer{tides: tides, metrics: metrics}
}

// Handler builds the HTTP handler with the tide routes, the MCP endpoint
// and the shared health and metrics routes
func (s *TideServer) Handler() http.Handler {
	mux := newToolMux()
	mux.HandleFunc("GET /sea-level", instrument(s.metrics, "get_tide_sea_level", s.handleSeaLevel))
	mux.HandleFunc("GET /extremes", instrument(s.metrics, "get_tide_extremes", s.handleExtremes))
	mountMCP(mux, s.MCPServer())
	return mux
}

func (s *TideServer) handleSeaLevel(w http.ResponseWriter, r *http.Request) {
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
	hours, err := intParam(r, "hours", DefaultTideHours)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	series, err := s.getSeaLevel(r.Context(), lat, lon, hours)
	if err != nil {
		if isBadRequest(err) {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
		writeError(w, http.StatusBadGateway, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *TideServer) handleExtremes(w http.ResponseWriter, r *http.Request) {
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
	days, err := intParam(r, "days", DefaultTideDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	extremes, err := s.getExtremes(r.Context(), lat, lon, days)
	if err != nil {
		if isBadRequest(err) {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
		writeError(w, http.StatusBadGateway, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, extremes)
}

func (s *TideServer) getSeaLevel(ctx context.Context, lat, lon float64, hours int) (entities.TideSeries, error) {
	if hours < 1 || hours > stormglass.MaxHours {
		return entities.TideSeries{}, badRequest("hours must be between 1 and %d", stormglass.MaxHours)
	}
	return s.tides.GetSeaLevel(ctx, lat, lon, hours)
}

func (s *TideServer) getExtremes(ctx context.Context, lat, lon float64, days int) ([]entities.TideExtreme, error) {
	if days < 1 || days > stormglass.MaxDays {
		return nil, badRequest("days must be between 1 and %d", stormglass.MaxDays)
	}
	extremes, err := s.tides.GetExtremes(ctx, lat, lon, days)
	if err != nil {
		return nil, err
	}
	if extremes == nil {
		// Calm stretches still serialize as an empty list, not null
		extremes = []entities.TideExtreme{}
	}
	return extremes, nil
}

// MCPServer exposes get_tide_sea_level and get_tide_extremes as MCP tools
func (s *TideServer) MCPServer() *server.MCPServer {
	srv := newMCPServer("tide-tool")

	seaLevel := mcp.NewTool("get_tide_sea_level",
		mcp.WithDescription("Get hourly sea level forecast for a location"),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in decimal degrees")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude in decimal degrees")),
		mcp.WithNumber("hours", mcp.DefaultNumber(DefaultTideHours), mcp.Description("Forecast hours to return, 1 to 240")),
	)
	srv.AddTool(seaLevel, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		lat, ok := floatArg(args, "lat")
		if !ok {
			return nil, badRequest("lat is required")
		}
		lon, ok := floatArg(args, "lon")
		if !ok {
			return nil, badRequest("lon is required")
		}
		hours := intArg(args, "hours", DefaultTideHours)

		series, err := s.getSeaLevel(ctx, lat, lon, hours)
		if err != nil {
			return nil, err
		}
		return jsonResult(series)
	})

	extremes := mcp.NewTool("get_tide_extremes",
		mcp.WithDescription("Get high and low tide events for the coming days"),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in decimal degrees")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude in decimal degrees")),
		mcp.WithNumber("days", mcp.DefaultNumber(DefaultTideDays), mcp.Description("Days to look ahead, 1 to 10")),
	)
	srv.AddTool(extremes, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		lat, ok := floatArg(args, "lat")
		if !ok {
			return nil, badRequest("lat is required")
		}
		lon, ok := floatArg(args, "lon")
		if !ok {
			return nil, badRequest("lon is required")
		}
		days := intArg(args, "days", DefaultTideDays)

		events, err := s.getExtremes(ctx, lat, lon, days)
		if err != nil {
			return nil, err
		}
		return jsonResult(map[string][]entities.TideExtreme{"extremes": events})
	})

	return srv
}
