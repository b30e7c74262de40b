package app

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"homework_status_bot/internal/domain/delivery"

	"gopkg.in/telebot.v3"
)

type fakeResponse struct {
	body string
	err  error
}

type fakeStatusAPI struct {
	t         *testing.T
	responses []fakeResponse
	calls     []int64
}

func (f *fakeStatusAPI) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	f.calls = append(f.calls, fromDate)
	if len(f.responses) == 0 {
		f.t.Fatalf("unexpected FetchStatuses call #%d", len(f.calls))
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	if r.err != nil {
		return nil, r.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(r.body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		f.t.Fatalf("bad fixture %q: %v", r.body, err)
	}
	return payload, nil
}

type sentMessage struct {
	chatID string
	text   string
}

// fakeTelegramClient fails the n-th call when failures[n] is non-nil.
type fakeTelegramClient struct {
	attempts []sentMessage
	failures []error
}

func (f *fakeTelegramClient) SendMessage(chatID string, text string, _ *telebot.SendOptions) error {
	f.attempts = append(f.attempts, sentMessage{chatID: chatID, text: text})
	if n := len(f.attempts) - 1; n < len(f.failures) && f.failures[n] != nil {
		return f.failures[n]
	}
	return nil
}

func (f *fakeTelegramClient) texts() []string {
	out := make([]string, 0, len(f.attempts))
	for _, m := range f.attempts {
		out = append(out, m.text)
	}
	return out
}

type fakeJournal struct {
	records []*delivery.Record
	err     error
}

func (f *fakeJournal) Save(_ context.Context, rec *delivery.Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

var errTelegramDown = errors.New("telegram: Bad Gateway (502)")
