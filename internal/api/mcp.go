package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// newMCPServer creates the MCP server a tool mounts at /mcp
func newMCPServer(name string) *server.MCPServer {
	return server.NewMCPServer(name, Version)
}

// mountMCP exposes the MCP server on the mux under /mcp using the
// streamable HTTP transport
func mountMCP(mux *http.ServeMux, mcpServer *server.MCPServer) {
	mux.Handle("/mcp", server.NewStreamableHTTPServer(mcpServer))
}

// toolArgs extracts the argument map from a tool call. JSON numbers
// arrive as float64.
func toolArgs(request mcp.CallToolRequest) map[string]any {
	args, _ := request.Params.Arguments.(map[string]any)
	return args
}

func floatArg(args map[string]any, key string) (float64, bool) {
	v, ok := args[key].(float64)
	return v, ok
}

func intArg(args map[string]any, key string, fallback int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func floatArgDefault(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func boolArg(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

// jsonResult wraps a value as structured content with a text fallback for
// clients that only read the content list
func jsonResult(v any) (*mcp.CallToolResult, error) {
	text, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %v", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.TextContent{Type: "text", Text: string(text)}},
		StructuredContent: v,
	}, nil
}
