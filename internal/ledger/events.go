package ledger

import (
	"context"
	"fmt"
)

// EventKind is the lifecycle step an Event records.
type EventKind string

const (
	EventAcquire EventKind = "acquire"
	EventRelease EventKind = "release"
)

// Event is one row of the ledger.
type Event struct {
	ID       int64     `json:"id"`
	BufferID string    `json:"buffer_id"`
	Kind     EventKind `json:"kind"`
	Seq      int64     `json:"seq"`
}

// RecordAcquire appends an acquire event. Duplicate (buffer, kind, seq)
// writes are ignored.
func (l *Ledger) RecordAcquire(ctx context.Context, bufferID string, seq int64) error {
	return l.record(ctx, bufferID, EventAcquire, seq)
}

// RecordRelease appends a release event. Duplicate (buffer, kind, seq)
// writes are ignored.
func (l *Ledger) RecordRelease(ctx context.Context, bufferID string, seq int64) error {
	return l.record(ctx, bufferID, EventRelease, seq)
}

func (l *Ledger) record(ctx context.Context, bufferID string, kind EventKind, seq int64) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO buffer_events (buffer_id, kind, seq)
		VALUES (?, ?, ?)
		ON CONFLICT(buffer_id, kind, seq) DO NOTHING
	`, bufferID, string(kind), seq)
	if err != nil {
		return fmt.Errorf("record %s %s: %w", kind, bufferID, err)
	}
	return nil
}

// Events returns every event in seq order.
func (l *Ledger) Events(ctx context.Context) ([]Event, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, buffer_id, kind, seq
		FROM buffer_events
		ORDER BY seq ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var kind string
		if err := rows.Scan(&e.ID, &e.BufferID, &kind, &e.Seq); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Kind = EventKind(kind)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
