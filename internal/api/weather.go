package api

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/integration/openmeteo"
	"github.com/DecayAI/windwizard/internal/observability"
)

// DefaultForecastHours is the forecast window used when the caller does
// not ask for one
const DefaultForecastHours = 48

// WeatherServer serves hourly wind forecasts over HTTP and MCP
type WeatherServer struct {
	client  *openmeteo.Client
	metrics *observability.Metrics
}

// NewWeatherServer creates a weather tool server backed by Open-Meteo
func NewWeatherServer(client *openmeteo.Client, metrics *observability.Metrics) *WeatherServer {
	return &WeatherServer{client: client, metrics: metrics}
}

// Handler builds the HTTP handler with the forecast route, the MCP
// endpoint and the shared health and metrics routes
func (s *WeatherServer) Handler() http.Handler {
	mux := newToolMux()
	mux.HandleFunc("GET /forecast", instrument(s.metrics, "get_wind_forecast", s.handleForecast))
	mountMCP(mux, s.MCPServer())
	return mux
}

func (s *WeatherServer) handleForecast(w http.ResponseWriter, r *http.Request) {
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
	hours, err := intParam(r, "hours", DefaultForecastHours)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	forecast, err := s.getForecast(r.Context(), lat, lon, hours)
	if err != nil {
		if isBadRequest(err) {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
		writeError(w, http.StatusBadGateway, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

// getForecast validates the window and fetches the forecast. Both the
// HTTP route and the MCP tool go through here.
func (s *WeatherServer) getForecast(ctx context.Context, lat, lon float64, hours int) (entities.WindForecast, error) {
	if hours < 1 || hours > openmeteo.MaxHours {
		return entities.WindForecast{}, badRequest("hours must be between 1 and %d", openmeteo.MaxHours)
	}
	forecast, err := s.client.GetWindForecast(ctx, lat, lon, hours)
	if err != nil {
		s.metrics.UpstreamCalls.WithLabelValues("open-meteo", observability.OutcomeError).Inc()
		return entities.WindForecast{}, err
	}
	s.metrics.UpstreamCalls.WithLabelValues("open-meteo", observability.OutcomeOK).Inc()
	return forecast, nil
}

// MCPServer exposes get_wind_forecast as an MCP tool
func (s *WeatherServer) MCPServer() *server.MCPServer {
	srv := newMCPServer("weather-tool")

	tool := mcp.NewTool("get_wind_forecast",
		mcp.WithDescription("Get hourly wind speed and direction forecast for a location"),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in decimal degrees")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude in decimal degrees")),
		mcp.WithNumber("hours", mcp.DefaultNumber(DefaultForecastHours), mcp.Description("Forecast hours to return, 1 to 168")),
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
		hours := intArg(args, "hours", DefaultForecastHours)

		forecast, err := s.getForecast(ctx, lat, lon, hours)
		if err != nil {
			return nil, err
		}
		return jsonResult(forecast)
	})
	return srv
}
