package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrUpsertFailed = errors.New("upsert operation failed")
	ErrSelectFailed = errors.New("select operation failed")
	ErrNotFound     = errors.New("not found")
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 500
)

// InsertEvent appends one event row and returns it as stored, including
// the server-assigned id and created_at. There is no conflict target:
// redelivery of the same message appends a second row.
func (db *DB) InsertEvent(ctx context.Context, event Event) (Event, error) {
	const fn = "DB:InsertEvent"
	doc, err := json.Marshal(event.Payload)
	if err != nil {
		return Event{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	var stored Event
	err = pgxscan.Get(ctx, db.pool, &stored, `
		INSERT INTO events (
			owner_id,
			device_id,
			occurred_at,
			event_type,
			payload
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, device_id, occurred_at, event_type, payload, created_at
	`, event.OwnerID, event.DeviceID, event.OccurredAt, event.EventType, doc)
	if err != nil {
		return Event{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return stored, nil
}

// UpsertDeviceHealth replaces the whole snapshot row for a device; fields
// that are nil on the input overwrite the stored value with NULL. The
// update applies only while the stored snapshot is not newer than the
// incoming one, so a stale redelivery cannot clobber fresher state; an
// equal timestamp still applies.
func (db *DB) UpsertDeviceHealth(ctx context.Context, snapshot HealthSnapshot) error {
	const fn = "DB:UpsertDeviceHealth"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO device_health (
			device_id,
			owner_id,
			battery,
			rssi,
			temp_c,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (device_id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			battery = EXCLUDED.battery,
			rssi = EXCLUDED.rssi,
			temp_c = EXCLUDED.temp_c,
			updated_at = EXCLUDED.updated_at
		WHERE device_health.updated_at <= EXCLUDED.updated_at
	`, snapshot.DeviceID, snapshot.OwnerID, snapshot.Battery, snapshot.RSSI, snapshot.TempC, snapshot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpsertFailed, err)
	}
	return nil
}

// InsertDeadLetter records a message the pipeline rejected, with the
// reason, for later inspection or replay.
func (db *DB) InsertDeadLetter(ctx context.Context, topic string, body []byte, reason string) error {
	const fn = "DB:InsertDeadLetter"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO events_deadletter (topic, payload, reason)
		VALUES ($1, $2, $3)
	`, topic, body, reason)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// ListDeadLetters reads rejected messages newest-first for inspection or
// replay.
func (db *DB) ListDeadLetters(ctx context.Context, limit int) ([]DeadLetter, error) {
	const fn = "DB:ListDeadLetters"
	if limit <= 0 {
		limit = defaultEventLimit
	}
	var letters []DeadLetter
	err := pgxscan.Select(ctx, db.pool, &letters, `
		SELECT id, topic, payload, reason, created_at
		FROM events_deadletter
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	if letters == nil {
		letters = []DeadLetter{}
	}
	return letters, nil
}

// GetDeviceWithHealth reads a device joined with its health snapshot.
// Returns ErrNotFound when no such device exists.
func (db *DB) GetDeviceWithHealth(ctx context.Context, deviceID string) (DeviceWithHealth, error) {
	const fn = "DB:GetDeviceWithHealth"
	var device DeviceWithHealth
	err := pgxscan.Get(ctx, db.pool, &device, `
		SELECT
			d.id,
			d.owner_id,
			d.name,
			d.location,
			d.created_at,
			h.battery,
			h.rssi,
			h.temp_c,
			h.updated_at AS health_updated_at
		FROM devices d
		LEFT JOIN device_health h ON h.device_id = d.id
		WHERE d.id = $1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return DeviceWithHealth{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return DeviceWithHealth{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}

// CreateDevice registers a device row. Provisioning is handled elsewhere;
// this exists for the API's collaborators and for seeding tests.
func (db *DB) CreateDevice(ctx context.Context, device Device) error {
	const fn = "DB:CreateDevice"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO devices (id, owner_id, name, location)
		VALUES ($1, $2, $3, $4)
	`, device.ID, device.OwnerID, device.Name, device.Location)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// ListEvents reads events newest-first, narrowed by the filter.
func (db *DB) ListEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	const fn = "DB:ListEvents"
	query := `SELECT id, owner_id, device_id, occurred_at, event_type, payload, created_at FROM events`
	var (
		where []string
		args  []any
	)
	if filter.DeviceID != "" {
		args = append(args, filter.DeviceID)
		where = append(where, fmt.Sprintf("device_id = $%d", len(args)))
	}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		where = append(where, fmt.Sprintf("event_type = $%d", len(args)))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		where = append(where, fmt.Sprintf("occurred_at >= $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d", len(args))

	var events []Event
	if err := pgxscan.Select(ctx, db.pool, &events, query, args...); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// UpsertDeviceSettings stores the settings document for a device,
// replacing any previous one.
func (db *DB) UpsertDeviceSettings(ctx context.Context, deviceID string, settings map[string]any) error {
	const fn = "DB:UpsertDeviceSettings"
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpsertFailed, err)
	}
	_, err = db.pool.Exec(ctx, `
		INSERT INTO device_settings (device_id, settings, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (device_id) DO UPDATE SET
			settings = EXCLUDED.settings,
			updated_at = now()
	`, deviceID, doc)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpsertFailed, err)
	}
	return nil
}
