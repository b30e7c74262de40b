// internal/domain/delivery/repository.go
package delivery

import "context"

// Repository is a write-only journal of delivered messages.
// It is never read back to restore polling state.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
}
