package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any ops tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
	)
	if err != nil {
		panic(err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}
	migrationsPath := "./migrations"

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: migrationsPath,
	})
	if err != nil {
		panic(err)
	}

	m.Run()

	pgContainer.Terminate(ctx)
	DBPool.Close()
}

func ptr(v float64) *float64 { return &v }

func TestInsertEvent_RoundTripAndNoDedup(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	deviceID := uuid.NewString()
	occurred := time.Now().UTC().Truncate(time.Millisecond)

	event := Event{
		OwnerID:    ownerID,
		DeviceID:   deviceID,
		OccurredAt: occurred,
		EventType:  "motion",
		Payload:    map[string]any{"event_type": "motion", "battery": 82.0, "firmware": "1.4.2"},
	}

	first, err := DBPool.InsertEvent(ctx, event)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "motion", first.EventType)
	assert.Equal(t, event.Payload, first.Payload)
	assert.WithinDuration(t, occurred, first.OccurredAt, time.Millisecond)

	// Events are an append log, not an idempotent set: the same message
	// stored twice yields two distinct rows.
	second, err := DBPool.InsertEvent(ctx, event)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := DBPool.ListEvents(ctx, EventFilter{DeviceID: deviceID})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpsertDeviceHealth_FullReplace(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	deviceID := uuid.NewString()
	require.NoError(t, DBPool.CreateDevice(ctx, Device{ID: deviceID, OwnerID: ownerID, Name: "sensor", Location: "locA"}))

	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, DBPool.UpsertDeviceHealth(ctx, HealthSnapshot{
		DeviceID:  deviceID,
		OwnerID:   ownerID,
		RSSI:      ptr(-70),
		UpdatedAt: base,
	}))

	// A later message carrying only battery replaces the whole row;
	// rssi must come back NULL, not the previous value.
	require.NoError(t, DBPool.UpsertDeviceHealth(ctx, HealthSnapshot{
		DeviceID:  deviceID,
		OwnerID:   ownerID,
		Battery:   ptr(82),
		UpdatedAt: base.Add(time.Minute),
	}))

	device, err := DBPool.GetDeviceWithHealth(ctx, deviceID)
	require.NoError(t, err)
	require.NotNil(t, device.Battery)
	assert.Equal(t, 82.0, *device.Battery)
	assert.Nil(t, device.RSSI)
	assert.Nil(t, device.TempC)
}

func TestUpsertDeviceHealth_StaleWriteSkipped(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	deviceID := uuid.NewString()
	require.NoError(t, DBPool.CreateDevice(ctx, Device{ID: deviceID, OwnerID: ownerID}))

	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, DBPool.UpsertDeviceHealth(ctx, HealthSnapshot{
		DeviceID:  deviceID,
		OwnerID:   ownerID,
		Battery:   ptr(90),
		UpdatedAt: base,
	}))

	// Out-of-order delivery: an older message must not clobber the
	// newer snapshot.
	require.NoError(t, DBPool.UpsertDeviceHealth(ctx, HealthSnapshot{
		DeviceID:  deviceID,
		OwnerID:   ownerID,
		Battery:   ptr(40),
		UpdatedAt: base.Add(-time.Hour),
	}))

	device, err := DBPool.GetDeviceWithHealth(ctx, deviceID)
	require.NoError(t, err)
	require.NotNil(t, device.Battery)
	assert.Equal(t, 90.0, *device.Battery)

	// An equal timestamp still applies, so exact redelivery keeps
	// second-write-wins semantics.
	require.NoError(t, DBPool.UpsertDeviceHealth(ctx, HealthSnapshot{
		DeviceID:  deviceID,
		OwnerID:   ownerID,
		Battery:   ptr(41),
		UpdatedAt: base,
	}))
	device, err = DBPool.GetDeviceWithHealth(ctx, deviceID)
	require.NoError(t, err)
	require.NotNil(t, device.Battery)
	assert.Equal(t, 41.0, *device.Battery)
}

func TestGetDeviceWithHealth(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	deviceID := uuid.NewString()
	require.NoError(t, DBPool.CreateDevice(ctx, Device{ID: deviceID, OwnerID: ownerID, Name: "door", Location: "hall"}))

	device, err := DBPool.GetDeviceWithHealth(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, "door", device.Name)
	assert.Nil(t, device.Battery)
	assert.Nil(t, device.HealthUpdatedAt)

	_, err = DBPool.GetDeviceWithHealth(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEvents_Filters(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	deviceID := uuid.NewString()
	otherDevice := uuid.NewString()
	base := time.Now().UTC().Truncate(time.Millisecond)

	seed := []Event{
		{OwnerID: ownerID, DeviceID: deviceID, OccurredAt: base, EventType: "motion", Payload: map[string]any{}},
		{OwnerID: ownerID, DeviceID: deviceID, OccurredAt: base.Add(time.Minute), EventType: "door", Payload: map[string]any{}},
		{OwnerID: ownerID, DeviceID: otherDevice, OccurredAt: base.Add(2 * time.Minute), EventType: "motion", Payload: map[string]any{}},
	}
	for _, e := range seed {
		_, err := DBPool.InsertEvent(ctx, e)
		require.NoError(t, err)
	}

	got, err := DBPool.ListEvents(ctx, EventFilter{DeviceID: deviceID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "door", got[0].EventType)
	assert.Equal(t, "motion", got[1].EventType)

	got, err = DBPool.ListEvents(ctx, EventFilter{DeviceID: deviceID, EventType: "motion"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	since := base.Add(30 * time.Second)
	got, err = DBPool.ListEvents(ctx, EventFilter{DeviceID: deviceID, Since: &since})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "door", got[0].EventType)

	got, err = DBPool.ListEvents(ctx, EventFilter{DeviceID: deviceID, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = DBPool.ListEvents(ctx, EventFilter{DeviceID: uuid.NewString()})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInsertDeadLetter(t *testing.T) {
	ctx := context.Background()

	err := DBPool.InsertDeadLetter(ctx, "env1/owner/loc", []byte("not-json"), "malformed payload")
	require.NoError(t, err)

	letters, err := DBPool.ListDeadLetters(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, letters)
	assert.Equal(t, "env1/owner/loc", letters[0].Topic)
	assert.Equal(t, []byte("not-json"), letters[0].Payload)
	assert.Equal(t, "malformed payload", letters[0].Reason)
}

func TestUpsertDeviceSettings(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.NewString()

	require.NoError(t, DBPool.UpsertDeviceSettings(ctx, deviceID, map[string]any{"interval_s": 30.0}))
	require.NoError(t, DBPool.UpsertDeviceSettings(ctx, deviceID, map[string]any{"interval_s": 60.0}))
}
