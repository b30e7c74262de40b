package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	// SendMessage accepts a numeric chat id or a public @channel username.
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}
