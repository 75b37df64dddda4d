package db

import "time"

// Event is one immutable row in the append-only event log. The pipeline
// never updates or deletes these; ordering between events for a device is
// by OccurredAt, not arrival.
type Event struct {
	ID         int64          `json:"id"`
	OwnerID    string         `json:"owner_id"`
	DeviceID   string         `json:"device_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	EventType  string         `json:"event_type"`
	Payload    map[string]any `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}

// HealthSnapshot is the latest known liveness state of a device, at most
// one row per device id. Nil numerics persist as NULL columns.
type HealthSnapshot struct {
	DeviceID  string    `json:"device_id"`
	OwnerID   string    `json:"owner_id"`
	Battery   *float64  `json:"battery"`
	RSSI      *float64  `json:"rssi"`
	TempC     *float64  `json:"temp_c"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Device is a registered device row.
type Device struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// DeviceWithHealth is the device read model: the device row left-joined
// with its health snapshot, so the health columns are nil for devices
// that never reported.
type DeviceWithHealth struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	Name            string     `json:"name"`
	Location        string     `json:"location"`
	CreatedAt       time.Time  `json:"created_at"`
	Battery         *float64   `json:"battery"`
	RSSI            *float64   `json:"rssi"`
	TempC           *float64   `json:"temp_c"`
	HealthUpdatedAt *time.Time `json:"health_updated_at"`
}

// DeadLetter is a message the pipeline rejected, kept for inspection or
// replay.
type DeadLetter struct {
	ID        int64     `json:"id"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// EventFilter narrows ListEvents. Zero values mean "no filter"; Limit is
// clamped to the 1..500 range with a default of 100.
type EventFilter struct {
	DeviceID  string
	EventType string
	Since     *time.Time
	Limit     int
}
