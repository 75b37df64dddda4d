package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"device-telemetry-backend/internal/db"
)

// ErrStoreWrite wraps any datastore-reported write failure. The
// coordinator treats it as fatal for the current message only.
var ErrStoreWrite = errors.New("store write failed")

type eventStore interface {
	InsertEvent(ctx context.Context, event db.Event) (db.Event, error)
}

// EventRecorder appends decoded messages to the immutable event log. It
// never retries and never deduplicates: redelivery of the same message
// appends a second row.
type EventRecorder struct {
	store eventStore
}

func NewEventRecorder(store eventStore) *EventRecorder {
	return &EventRecorder{store: store}
}

// Record durably appends one event and returns it as stored, including
// server-assigned fields.
func (r *EventRecorder) Record(ctx context.Context, ownerID, deviceID string, occurredAt time.Time, eventType string, payload map[string]any) (db.Event, error) {
	stored, err := r.store.InsertEvent(ctx, db.Event{
		OwnerID:    ownerID,
		DeviceID:   deviceID,
		OccurredAt: occurredAt,
		EventType:  eventType,
		Payload:    payload,
	})
	if err != nil {
		return db.Event{}, fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	return stored, nil
}
