package notify

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender sends text messages through Twilio
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewSMSSender creates an SMS sender. Missing credentials leave the sender
// unconfigured rather than failing, so the service can still start.
func NewSMSSender(accountSID, authToken, fromNumber string) *SMSSender {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return &SMSSender{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSSender{client: client, from: fromNumber}
}

// Configured reports whether Twilio credentials are present
func (s *SMSSender) Configured() bool {
	return s.client != nil
}

// Send delivers an SMS and returns the provider message sid
func (s *SMSSender) Send(to, message string) (string, error) {
	if s.client == nil {
		return "", &NotConfiguredError{Channel: "Twilio"}
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send SMS: %v", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	log.Printf("Sent SMS to %s, sid %s", to, sid)
	return sid, nil
}
