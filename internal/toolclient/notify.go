package toolclient

import (
	"context"
	"fmt"
	"time"

	"github.com/DecayAI/windwizard/internal/usecases"
)

// NotifyClient calls the push notification tool server. The tool reports
// missing channel credentials in the response body with a 200 status, so
// every send checks the error field as well.
type NotifyClient struct {
	httpClient
}

// NewNotifyClient creates a client for the notify tool at baseURL
func NewNotifyClient(baseURL string, timeout time.Duration) *NotifyClient {
	return &NotifyClient{httpClient: newHTTPClient(baseURL, timeout)}
}

// SendSMS sends an SMS and returns the provider message sid
func (c *NotifyClient) SendSMS(ctx context.Context, to, message string) (string, error) {
	var result struct {
		Sid   string `json:"sid"`
		Error string `json:"error"`
	}
	body := map[string]string{"to_number": to, "message": message}
	if err := c.postJSON(ctx, "/sms", body, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("failed to send SMS: %s", result.Error)
	}
	return result.Sid, nil
}

// SendEmail sends an email and returns the provider status code
func (c *NotifyClient) SendEmail(ctx context.Context, to, subject, message string) (int, error) {
	var result struct {
		StatusCode int    `json:"status_code"`
		Error      string `json:"error"`
	}
	body := map[string]string{"to_email": to, "subject": subject, "message": message}
	if err := c.postJSON(ctx, "/email", body, &result); err != nil {
		return 0, err
	}
	if result.Error != "" {
		return 0, fmt.Errorf("failed to send email: %s", result.Error)
	}
	return result.StatusCode, nil
}

// SendTelegram sends a Telegram message and returns the message id
func (c *NotifyClient) SendTelegram(ctx context.Context, chatID int64, message string) (int, error) {
	var result struct {
		MessageID int    `json:"message_id"`
		Error     string `json:"error"`
	}
	body := map[string]any{"chat_id": chatID, "message": message}
	if err := c.postJSON(ctx, "/telegram", body, &result); err != nil {
		return 0, err
	}
	if result.Error != "" {
		return 0, fmt.Errorf("failed to send telegram message: %s", result.Error)
	}
	return result.MessageID, nil
}

var (
	_ usecases.AlertSender  = (*NotifyClient)(nil)
	_ usecases.NotifySender = (*NotifyClient)(nil)
)
