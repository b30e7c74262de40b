// internal/app/notifier.go
package app

import (
	"fmt"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// DeliveryError is returned when the Telegram transport rejects a message.
type DeliveryError struct {
	ChatID string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver message to chat %s: %v", e.ChatID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Notifier sends plain text messages to the configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger.WithField("component", "notifier"),
	}
}

// ChatID returns the destination chat.
func (n *Notifier) ChatID() string {
	return n.chatID
}

// Notify sends text to the chat. Transport failures come back as *DeliveryError.
func (n *Notifier) Notify(text string) error {
	logCtx := n.logger.WithField("chat_id", n.chatID)
	logCtx.Info("Sending message to chat")

	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		return &DeliveryError{ChatID: n.chatID, Err: err}
	}

	logCtx.Info("Message sent successfully")
	return nil
}
