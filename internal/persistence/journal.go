package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/greentouch-site/internal/events"
)

const insertEventSQL = `
INSERT INTO site_events (id, type, record_id, payload, occurred_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

// EventJournal appends site events to Postgres. It is write-only; the
// in-memory store never reads it back.
type EventJournal struct {
	pool *pgxpool.Pool
}

// NewEventJournal returns a journal over pool.
func NewEventJournal(pool *pgxpool.Pool) *EventJournal {
	return &EventJournal{pool: pool}
}

// Append writes one event row.
func (j *EventJournal) Append(ctx context.Context, event events.Event) error {
	if j == nil || j.pool == nil {
		return ErrDisabled
	}
	payload, err := encodePayload(event.Payload)
	if err != nil {
		return err
	}
	if _, err := j.pool.Exec(ctx, insertEventSQL,
		event.ID, string(event.Type), event.RecordID, payload, event.Timestamp); err != nil {
		return fmt.Errorf("insert event %s: %w", event.ID, err)
	}
	return nil
}

func encodePayload(payload any) ([]byte, error) {
	if payload == nil {
		return []byte("{}"), nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return raw, nil
}
