// internal/domain/delivery/record.go
package delivery

import (
	"time"

	"github.com/google/uuid"
)

// Kind tells a homework status message apart from a failure alert.
type Kind string

const (
	KindStatus Kind = "STATUS"
	KindAlert  Kind = "ALERT"
)

// Record is one message delivered to the Telegram chat.
// Corresponds to the 'homework_deliveries' table.
type Record struct {
	ID      uuid.UUID
	CycleID uuid.UUID // Poll cycle that produced the message
	Kind    Kind
	ChatID  string
	Text    string
	SentAt  time.Time
}
