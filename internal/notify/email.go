package notify

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender sends plain text emails through SendGrid
type EmailSender struct {
	apiKey string
	from   string
}

// NewEmailSender creates an email sender. An empty API key leaves it
// unconfigured.
func NewEmailSender(apiKey, fromEmail string) *EmailSender {
	return &EmailSender{apiKey: apiKey, from: fromEmail}
}

// Configured reports whether a SendGrid API key is present
func (s *EmailSender) Configured() bool {
	return s.apiKey != ""
}

// Send delivers an email and returns the SendGrid status code
func (s *EmailSender) Send(to, subject, message string) (int, error) {
	if s.apiKey == "" {
		return 0, &NotConfiguredError{Channel: "SendGrid"}
	}

	from := mail.NewEmail("WindWizard", s.from)
	recipient := mail.NewEmail("", to)
	email := mail.NewSingleEmail(from, subject, recipient, message, "")

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.Send(email)
	if err != nil {
		return 0, fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Sent email to %s, status %d", to, resp.StatusCode)
	return resp.StatusCode, nil
}
