package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/repository"
)

// ProfileServer serves rider profile storage over HTTP and MCP
type ProfileServer struct {
	repo    repository.ProfileRepository
	metrics *observability.Metrics
}

// NewProfileServer creates a profile tool server backed by the repository
func NewProfileServer(repo repository.ProfileRepository, metrics *observability.Metrics) *ProfileServer {
	return &ProfileServer{repo: repo, metrics: metrics}
}

// Handler builds the HTTP handler with the profile routes, the MCP
// endpoint and the shared health and metrics routes
func (s *ProfileServer) Handler() http.Handler {
	mux := newToolMux()
	mux.HandleFunc("GET /profile", instrument(s.metrics, "get_profile", s.handleGetProfile))
	mux.HandleFunc("POST /profile", instrument(s.metrics, "set_profile", s.handleSetProfile))
	mux.HandleFunc("GET /profiles/alerts", instrument(s.metrics, "list_alert_profiles", s.handleAlertProfiles))
	mountMCP(mux, s.MCPServer())
	return mux
}

func (s *ProfileServer) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	profile, found, err := s.repo.GetProfile(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	if !found {
		// Unknown riders get an empty object rather than a 404
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *ProfileServer) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	var profile entities.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile body: %v", err)
		return
	}
	if profile.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if err := s.repo.SaveProfile(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAlertProfiles lists the riders the condition watcher sweeps
func (s *ProfileServer) handleAlertProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.repo.ListAlertProfiles()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	if profiles == nil {
		profiles = []entities.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

// MCPServer exposes get_profile and set_profile as MCP tools.
// set_profile replaces the whole profile, so callers should send every
// field they want to keep.
func (s *ProfileServer) MCPServer() *server.MCPServer {
	srv := newMCPServer("user-profile-tool")

	getProfile := mcp.NewTool("get_profile",
		mcp.WithDescription("Get the stored profile for a rider, empty if none exists"),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("Rider identifier")),
	)
	srv.AddTool(getProfile, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		userID := stringArg(args, "user_id")

		profile, found, err := s.repo.GetProfile(userID)
		if err != nil {
			return nil, err
		}
		if !found {
			return jsonResult(map[string]any{})
		}
		return jsonResult(profile)
	})

	setProfile := mcp.NewTool("set_profile",
		mcp.WithDescription("Create or replace the profile for a rider"),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("Rider identifier")),
		mcp.WithNumber("weight", mcp.Description("Rider weight in kilograms")),
		mcp.WithString("skill", mcp.Description("Skill level such as beginner, intermediate or advanced")),
		mcp.WithString("phone", mcp.Description("Phone number for SMS alerts")),
		mcp.WithString("email", mcp.Description("Email address for alerts")),
		mcp.WithNumber("telegram_chat_id", mcp.Description("Telegram chat for alerts")),
		mcp.WithNumber("home_lat", mcp.Description("Latitude of the home spot")),
		mcp.WithNumber("home_lon", mcp.Description("Longitude of the home spot")),
		mcp.WithBoolean("alerts_enabled", mcp.Description("Whether the condition watcher should include this rider")),
	)
	srv.AddTool(setProfile, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		userID := stringArg(args, "user_id")
		if userID == "" {
			return nil, badRequest("user_id is required")
		}

		profile := entities.Profile{
			UserID:         userID,
			Weight:         floatArgDefault(args, "weight", 0),
			Skill:          stringArg(args, "skill"),
			Phone:          stringArg(args, "phone"),
			Email:          stringArg(args, "email"),
			TelegramChatID: int64(floatArgDefault(args, "telegram_chat_id", 0)),
			HomeLat:        floatArgDefault(args, "home_lat", 0),
			HomeLon:        floatArgDefault(args, "home_lon", 0),
			AlertsEnabled:  boolArg(args, "alerts_enabled"),
		}
		if err := s.repo.SaveProfile(profile); err != nil {
			return nil, err
		}
		return jsonResult(map[string]string{"status": "ok"})
	})

	return srv
}
