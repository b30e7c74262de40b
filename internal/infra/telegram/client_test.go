package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type botAPIStub struct {
	calls []map[string]any
	fail  bool
}

func (s *botAPIStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			if strings.Contains(r.URL.Path, "/botbad-token/") {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"hw","username":"hw_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var params map[string]any
			if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			s.calls = append(s.calls, params)
			if s.fail {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newStubServer(t *testing.T, stub *botAPIStub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestNewBot_ValidToken(t *testing.T) {
	srv := newStubServer(t, &botAPIStub{})

	b, err := NewBot(BotSettings{Token: "good-token", URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "hw_bot", b.Me.Username)
}

func TestNewBot_RejectedToken(t *testing.T) {
	srv := newStubServer(t, &botAPIStub{})

	_, err := NewBot(BotSettings{Token: "bad-token", URL: srv.URL})

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
}

func TestNewBot_EmptyToken(t *testing.T) {
	_, err := NewBot(BotSettings{Token: "  "})

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Contains(t, err.Error(), "telegram token is empty")
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	stub := &botAPIStub{}
	srv := newStubServer(t, stub)
	b, err := NewBot(BotSettings{Token: "good-token", URL: srv.URL, Offline: true})
	require.NoError(t, err)

	err = NewTelebotAdapter(b).SendMessage("42", "hello", nil)
	require.NoError(t, err)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, "42", stub.calls[0]["chat_id"])
	assert.Equal(t, "hello", stub.calls[0]["text"])
}

func TestTelebotAdapter_SendMessageFailure(t *testing.T) {
	stub := &botAPIStub{fail: true}
	srv := newStubServer(t, stub)
	b, err := NewBot(BotSettings{Token: "good-token", URL: srv.URL, Offline: true})
	require.NoError(t, err)

	err = NewTelebotAdapter(b).SendMessage("@homework_channel", "hello", nil)
	require.Error(t, err)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "@homework_channel", stub.calls[0]["chat_id"])
}
