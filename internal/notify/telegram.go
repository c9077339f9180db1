package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender sends messages through a Telegram bot
type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramSender creates a Telegram sender. An empty token or a failed
// bot handshake leaves the sender unconfigured instead of taking the whole
// service down.
func NewTelegramSender(token string) *TelegramSender {
	if token == "" {
		return &TelegramSender{}
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("Warning: failed to initialize Telegram bot: %v", err)
		return &TelegramSender{}
	}
	log.Printf("Telegram notifications authorized on account %s", bot.Self.UserName)
	return &TelegramSender{bot: bot}
}

// Configured reports whether the Telegram bot is ready
func (s *TelegramSender) Configured() bool {
	return s.bot != nil
}

// Send delivers a message to a chat and returns the Telegram message id
func (s *TelegramSender) Send(chatID int64, message string) (int, error) {
	if s.bot == nil {
		return 0, &NotConfiguredError{Channel: "Telegram"}
	}

	msg := tgbotapi.NewMessage(chatID, message)
	sent, err := s.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send Telegram message: %v", err)
	}

	log.Printf("Sent Telegram message %d to chat %d", sent.MessageID, chatID)
	return sent.MessageID, nil
}
