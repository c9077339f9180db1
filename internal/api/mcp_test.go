package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// newMCPSession connects a streamable HTTP client to the /mcp endpoint of
// a running test server and completes the initialize handshake
func newMCPSession(t *testing.T, baseURL string) *mcpclient.Client {
	t.Helper()

	session, err := mcpclient.NewStreamableHttpClient(baseURL + "/mcp")
	if err != nil {
		t.Fatalf("Failed to create MCP client: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	if err := session.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start MCP client: %v", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "windwizard-test", Version: Version}
	if _, err := session.Initialize(context.Background(), initReq); err != nil {
		t.Fatalf("Failed to initialize MCP session: %v", err)
	}
	return session
}

func callTool(t *testing.T, session *mcpclient.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := session.CallTool(context.Background(), req)
	if err != nil {
		t.Fatalf("CallTool %s failed: %v", name, err)
	}
	if result.IsError {
		t.Fatalf("CallTool %s returned a tool error: %s", name, textContent(t, result))
	}
	return result
}

// decodeToolResult unmarshals the text payload of a tool result into v
func decodeToolResult(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(textContent(t, result)), v); err != nil {
		t.Fatalf("Failed to decode tool result: %v", err)
	}
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	var parts []string
	for _, item := range result.Content {
		switch content := item.(type) {
		case mcp.TextContent:
			parts = append(parts, content.Text)
		case *mcp.TextContent:
			parts = append(parts, content.Text)
		}
	}
	if len(parts) == 0 {
		t.Fatal("Tool result had no text content")
	}
	return strings.Join(parts, "\n")
}
