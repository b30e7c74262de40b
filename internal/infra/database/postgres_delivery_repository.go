// internal/infra/database/postgres_delivery_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/delivery"

	"github.com/lib/pq"
)

var ErrDuplicateDelivery = fmt.Errorf("delivery record with this ID already exists")

const uniqueViolation = pq.ErrorCode("23505")

const createDeliveriesTable = `CREATE TABLE IF NOT EXISTS homework_deliveries (
    id         UUID PRIMARY KEY,
    cycle_id   UUID NOT NULL,
    kind       TEXT NOT NULL,
    chat_id    TEXT NOT NULL,
    text       TEXT NOT NULL,
    sent_at    TIMESTAMPTZ NOT NULL
)`

type PostgresDeliveryRepository struct {
	db *sql.DB
}

func NewPostgresDeliveryRepository(db *sql.DB) *PostgresDeliveryRepository {
	return &PostgresDeliveryRepository{db: db}
}

// EnsureSchema creates the journal table when it does not exist yet.
func (r *PostgresDeliveryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDeliveriesTable); err != nil {
		return fmt.Errorf("error creating homework_deliveries table: %w", err)
	}
	return nil
}

func (r *PostgresDeliveryRepository) Save(ctx context.Context, rec *delivery.Record) error {
	query := `INSERT INTO homework_deliveries (id, cycle_id, kind, chat_id, text, sent_at)
               VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.CycleID, string(rec.Kind), rec.ChatID, rec.Text, rec.SentAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateDelivery
		}
		return fmt.Errorf("error saving delivery record: %w", err)
	}
	return nil
}
