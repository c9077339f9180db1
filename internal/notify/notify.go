// Package notify delivers alert messages over SMS, email and Telegram
package notify

import "errors"

// NotConfiguredError reports that a notification channel has no credentials.
// Its message is surfaced verbatim in tool responses, so the channel name
// matches what riders see ("Twilio not configured").
type NotConfiguredError struct {
	Channel string
}

func (e *NotConfiguredError) Error() string {
	return e.Channel + " not configured"
}

// IsNotConfigured reports whether err means a channel is missing credentials
func IsNotConfigured(err error) bool {
	var nc *NotConfiguredError
	return errors.As(err, &nc)
}
