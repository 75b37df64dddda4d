package ingest

import (
	"context"
	"fmt"
	"time"

	"device-telemetry-backend/internal/db"
)

type healthStore interface {
	UpsertDeviceHealth(ctx context.Context, snapshot db.HealthSnapshot) error
}

// HealthReconciler maintains the single latest health snapshot per
// device. The write replaces the whole row: fields absent from the
// message become NULL, never a merge with previous values.
type HealthReconciler struct {
	store healthStore
}

func NewHealthReconciler(store healthStore) *HealthReconciler {
	return &HealthReconciler{store: store}
}

// Reconcile upserts the device's snapshot keyed by device id. updatedAt
// carries the message's occurrence timestamp; the store skips the write
// when the stored snapshot is strictly newer.
func (r *HealthReconciler) Reconcile(ctx context.Context, deviceID, ownerID string, battery, rssi, tempC *float64, updatedAt time.Time) error {
	err := r.store.UpsertDeviceHealth(ctx, db.HealthSnapshot{
		DeviceID:  deviceID,
		OwnerID:   ownerID,
		Battery:   battery,
		RSSI:      rssi,
		TempC:     tempC,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	return nil
}
