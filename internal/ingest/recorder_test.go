package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"device-telemetry-backend/internal/db"

	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_Record(t *testing.T) {
	occurred := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	input := db.Event{
		OwnerID:    testOwnerID,
		DeviceID:   testDeviceID,
		OccurredAt: occurred,
		EventType:  "motion",
		Payload:    map[string]any{"event_type": "motion"},
	}

	t.Run("returns the stored row", func(t *testing.T) {
		stored := input
		stored.ID = 42
		store := NewMockeventStore(t)
		store.EXPECT().InsertEvent(mock.Anything, input).Return(stored, nil)

		got, err := NewEventRecorder(store).Record(context.Background(), testOwnerID, testDeviceID, occurred, "motion", input.Payload)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("wraps datastore errors", func(t *testing.T) {
		store := NewMockeventStore(t)
		store.EXPECT().InsertEvent(mock.Anything, input).Return(db.Event{}, errors.New("connection refused"))

		_, err := NewEventRecorder(store).Record(context.Background(), testOwnerID, testDeviceID, occurred, "motion", input.Payload)
		assert.ErrorIs(t, err, ErrStoreWrite)
	})
}
