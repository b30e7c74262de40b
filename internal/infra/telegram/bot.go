package telegram

import (
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"
)

// InitError means the bot could not be constructed, usually because the token
// was rejected by getMe. It is fatal at startup.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("telegram bot initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// BotSettings configures NewBot. URL and Offline are only overridden in tests.
type BotSettings struct {
	Token   string
	URL     string
	Offline bool
}

// NewBot creates a send-only bot. Unless Offline is set the token is verified
// against the Bot API; the poller is never started.
func NewBot(s BotSettings) (*telebot.Bot, error) {
	if strings.TrimSpace(s.Token) == "" {
		return nil, &InitError{Err: fmt.Errorf("telegram token is empty")}
	}
	b, err := telebot.NewBot(telebot.Settings{
		Token:   s.Token,
		URL:     s.URL,
		Offline: s.Offline,
	})
	if err != nil {
		return nil, &InitError{Err: err}
	}
	return b, nil
}
