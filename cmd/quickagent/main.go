// Command quickagent runs a scripted tour of the WindWizard tool servers
// over MCP: wind forecast, sea level and nearby spots for one location.
// It is a smoke test for a running deployment, not a real agent.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DecayAI/windwizard/internal/api"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		weatherURL = flag.String("weather-url", "http://127.0.0.1:7860", "weather tool base URL")
		tideURL    = flag.String("tide-url", "http://127.0.0.1:7861", "tide tool base URL")
		spotURL    = flag.String("spot-url", "http://127.0.0.1:7862", "spot tool base URL")
		lat        = flag.Float64("lat", api.DefaultUILat, "latitude to check")
		lon        = flag.Float64("lon", api.DefaultUILon, "longitude to check")
		hours      = flag.Int("hours", 5, "forecast window in hours")
		maxKm      = flag.Float64("max-km", 50, "spot search radius in km")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	call(ctx, *weatherURL, "get_wind_forecast",
		fmt.Sprintf("lat=%g, lon=%g, hours=%d", *lat, *lon, *hours),
		map[string]any{"lat": *lat, "lon": *lon, "hours": *hours})

	call(ctx, *tideURL, "get_tide_sea_level",
		fmt.Sprintf("lat=%g, lon=%g, hours=%d", *lat, *lon, *hours),
		map[string]any{"lat": *lat, "lon": *lon, "hours": *hours})

	call(ctx, *spotURL, "get_spots_near",
		fmt.Sprintf("lat=%g, lon=%g, max_km=%g", *lat, *lon, *maxKm),
		map[string]any{"lat": *lat, "lon": *lon, "max_km": *maxKm})
}

// call opens an MCP session against one tool server, invokes a single
// tool and prints the JSON payload it returns
func call(ctx context.Context, baseURL, tool, label string, args map[string]any) {
	fmt.Printf("\n=== Calling %s(%s) ===\n", tool, label)

	session, err := mcpclient.NewStreamableHttpClient(baseURL + "/mcp")
	if err != nil {
		log.Fatalf("Failed to create MCP client for %s: %v", baseURL, err)
	}
	defer session.Close()

	if err := session.Start(ctx); err != nil {
		log.Fatalf("Failed to connect to %s: %v", baseURL, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "quickagent", Version: api.Version}
	if _, err := session.Initialize(ctx, initReq); err != nil {
		log.Fatalf("Failed to initialize MCP session with %s: %v", baseURL, err)
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args

	result, err := session.CallTool(ctx, req)
	if err != nil {
		log.Fatalf("Tool call %s failed: %v", tool, err)
	}

	for _, item := range result.Content {
		switch content := item.(type) {
		case mcp.TextContent:
			fmt.Println(prettyJSON(content.Text))
		case *mcp.TextContent:
			fmt.Println(prettyJSON(content.Text))
		}
	}
}

// prettyJSON re-indents a JSON payload and passes through anything that
// does not parse as JSON
func prettyJSON(text string) string {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return text
	}
	return string(pretty)
}
