package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DecayAI/windwizard/internal/notify"
	"github.com/DecayAI/windwizard/internal/observability"
)

// NotifyServer serves the SMS, email and Telegram channels over HTTP
// and MCP. An unconfigured channel answers 200 with an error field so a
// demo without credentials keeps working.
type NotifyServer struct {
	sms      *notify.SMSSender
	email    *notify.EmailSender
	telegram *notify.TelegramSender
	metrics  *observability.Metrics
}

// NewNotifyServer creates a notification tool server over the given senders
func NewNotifyServer(sms *notify.SMSSender, email *notify.EmailSender, telegram *notify.TelegramSender, metrics *observability.Metrics) *NotifyServer {
	return &NotifyServer{sms: sms, email: email, telegram: telegram, metrics: metrics}
}

// Handler builds the HTTP handler with the channel routes, the MCP
// endpoint and the shared health and metrics routes
func (s *NotifyServer) Handler() http.Handler {
	mux := newToolMux()
	mux.HandleFunc("POST /sms", instrument(s.metrics, "send_sms", s.handleSMS))
	mux.HandleFunc("POST /email", instrument(s.metrics, "send_email", s.handleEmail))
	mux.HandleFunc("POST /telegram", instrument(s.metrics, "send_telegram", s.handleTelegram))
	mountMCP(mux, s.MCPServer())
	return mux
}

type smsRequest struct {
	ToNumber string `json:"to_number"`
	Message  string `json:"message"`
}

type emailRequest struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type telegramRequest struct {
	ChatID  int64  `json:"chat_id"`
	Message string `json:"message"`
}

func (s *NotifyServer) handleSMS(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	result, err := s.sendSMS(req.ToNumber, req.Message)
	s.writeChannelResult(w, result, err)
}

func (s *NotifyServer) handleEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	result, err := s.sendEmail(req.ToEmail, req.Subject, req.Message)
	s.writeChannelResult(w, result, err)
}

func (s *NotifyServer) handleTelegram(w http.ResponseWriter, r *http.Request) {
	var req telegramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	result, err := s.sendTelegram(req.ChatID, req.Message)
	s.writeChannelResult(w, result, err)
}

// writeChannelResult maps channel outcomes onto the wire contract:
// missing credentials answer 200 with an error field, real send failures
// answer 502
func (s *NotifyServer) writeChannelResult(w http.ResponseWriter, result map[string]any, err error) {
	if err != nil {
		if notify.IsNotConfigured(err) {
			writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
			return
		}
		writeError(w, http.StatusBadGateway, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *NotifyServer) sendSMS(to, message string) (map[string]any, error) {
	sid, err := s.sms.Send(to, message)
	if err != nil {
		s.recordNotification("sms", err)
		return nil, err
	}
	s.recordNotification("sms", nil)
	return map[string]any{"sid": sid}, nil
}

func (s *NotifyServer) sendEmail(to, subject, message string) (map[string]any, error) {
	statusCode, err := s.email.Send(to, subject, message)
	if err != nil {
		s.recordNotification("email", err)
		return nil, err
	}
	s.recordNotification("email", nil)
	return map[string]any{"status_code": statusCode}, nil
}

func (s *NotifyServer) sendTelegram(chatID int64, message string) (map[string]any, error) {
	messageID, err := s.telegram.Send(chatID, message)
	if err != nil {
		s.recordNotification("telegram", err)
		return nil, err
	}
	s.recordNotification("telegram", nil)
	return map[string]any{"message_id": messageID}, nil
}

func (s *NotifyServer) recordNotification(channel string, err error) {
	outcome := observability.OutcomeOK
	switch {
	case notify.IsNotConfigured(err):
		outcome = observability.OutcomeSkipped
		log.Printf("Warning: %s requested but %v", channel, err)
	case err != nil:
		outcome = observability.OutcomeError
	}
	s.metrics.Notifications.WithLabelValues(channel, outcome).Inc()
}

// MCPServer exposes send_sms, send_email and send_telegram as MCP tools
func (s *NotifyServer) MCPServer() *server.MCPServer {
	srv := newMCPServer("push-notify-tool")

	sendSMS := mcp.NewTool("send_sms",
		mcp.WithDescription("Send an SMS via Twilio"),
		mcp.WithString("to_number", mcp.Required(), mcp.Description("Recipient phone number in E.164 format")),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message body")),
	)
	srv.AddTool(sendSMS, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		result, err := s.sendSMS(stringArg(args, "to_number"), stringArg(args, "message"))
		return channelToolResult(result, err)
	})

	sendEmail := mcp.NewTool("send_email",
		mcp.WithDescription("Send an email via SendGrid"),
		mcp.WithString("to_email", mcp.Required(), mcp.Description("Recipient email address")),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Email subject")),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message body")),
	)
	srv.AddTool(sendEmail, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		result, err := s.sendEmail(stringArg(args, "to_email"), stringArg(args, "subject"), stringArg(args, "message"))
		return channelToolResult(result, err)
	})

	sendTelegram := mcp.NewTool("send_telegram",
		mcp.WithDescription("Send a Telegram message"),
		mcp.WithNumber("chat_id", mcp.Required(), mcp.Description("Telegram chat identifier")),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message body")),
	)
	srv.AddTool(sendTelegram, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := toolArgs(request)
		chatID := int64(floatArgDefault(args, "chat_id", 0))
		result, err := s.sendTelegram(chatID, stringArg(args, "message"))
		return channelToolResult(result, err)
	})

	return srv
}

// channelToolResult mirrors the HTTP contract for MCP callers: an
// unconfigured channel is a normal result with an error field
func channelToolResult(result map[string]any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		if notify.IsNotConfigured(err) {
			return jsonResult(map[string]string{"error": err.Error()})
		}
		return nil, err
	}
	return jsonResult(result)
}
