package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"device-telemetry-backend/internal/broker"
	"device-telemetry-backend/internal/payload"
	"device-telemetry-backend/internal/topic"
)

var ErrChannelNotAccepted = errors.New("channel not accepted")

type source interface {
	Next(ctx context.Context) (broker.Message, error)
}

type deadLetterer interface {
	InsertDeadLetter(ctx context.Context, topic string, body []byte, reason string) error
}

type Config struct {
	Source      source
	Recorder    *EventRecorder
	Reconciler  *HealthReconciler
	DeadLetters deadLetterer
	// Channels is the accepted set of topic channel segments; empty
	// defaults to {"evt"}.
	Channels []string
	// Now is the wall clock used for payload defaults; nil means time.Now.
	Now func() time.Time
}

// Coordinator drives the per-message pipeline: parse topic, check the
// channel, decode the payload, append the event, reconcile the health
// snapshot. Any failure is terminal for that message only and nothing is
// retried here; redelivery is the broker contract's job.
type Coordinator struct {
	source      source
	recorder    *EventRecorder
	reconciler  *HealthReconciler
	deadLetters deadLetterer
	channels    map[string]struct{}
	now         func() time.Time
}

func New(cfg Config) *Coordinator {
	channels := make(map[string]struct{}, len(cfg.Channels))
	for _, channel := range cfg.Channels {
		channels[channel] = struct{}{}
	}
	if len(channels) == 0 {
		channels["evt"] = struct{}{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Coordinator{
		source:      cfg.Source,
		recorder:    cfg.Recorder,
		reconciler:  cfg.Reconciler,
		deadLetters: cfg.DeadLetters,
		channels:    channels,
		now:         now,
	}
}

// ProcessMessage pulls one delivery and processes it to completion or
// rejection. The returned error reports the outcome to the worker loop;
// it never demands a retry.
func (c *Coordinator) ProcessMessage(ctx context.Context) error {
	msg, err := c.source.Next(ctx)
	if err != nil {
		return err
	}

	identity, err := topic.Parse(msg.Topic)
	if err != nil {
		c.reject(ctx, msg, err)
		return err
	}
	if _, ok := c.channels[identity.Channel]; !ok {
		err := fmt.Errorf("%w: %q", ErrChannelNotAccepted, identity.Channel)
		c.reject(ctx, msg, err)
		return err
	}

	decoded, err := payload.Decode(msg.Payload, c.now())
	if err != nil {
		c.reject(ctx, msg, err)
		return err
	}

	event, err := c.recorder.Record(ctx, identity.OwnerID, identity.DeviceID, decoded.OccurredAt, decoded.EventType, decoded.Fields)
	if err != nil {
		// A failed event append aborts the message; the health write
		// is skipped.
		c.reject(ctx, msg, err)
		return err
	}

	if err := c.reconciler.Reconcile(ctx, identity.DeviceID, identity.OwnerID, decoded.Battery, decoded.RSSI, decoded.TempC, decoded.OccurredAt); err != nil {
		// The event row stands; the snapshot stays stale until the
		// next message for this device lands. No rollback.
		messagesTotal.WithLabelValues(outcomeHealthFailed).Inc()
		slog.ErrorContext(ctx, "Health reconciliation failed",
			"topic", msg.Topic,
			"device_id", identity.DeviceID,
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	messagesTotal.WithLabelValues(outcomeCompleted).Inc()
	slog.InfoContext(ctx, "Message ingested",
		"topic", msg.Topic,
		"device_id", identity.DeviceID,
		"event_type", decoded.EventType,
		"event_id", event.ID,
	)
	return nil
}

// reject logs and dead-letters a message the pipeline will not process.
// A dead-letter write failure is itself only logged.
func (c *Coordinator) reject(ctx context.Context, msg broker.Message, cause error) {
	messagesTotal.WithLabelValues(outcomeRejected).Inc()
	slog.ErrorContext(ctx, "Message rejected",
		"topic", msg.Topic,
		"payload", string(msg.Payload),
		"error", cause,
	)
	if c.deadLetters == nil {
		return
	}
	if err := c.deadLetters.InsertDeadLetter(ctx, msg.Topic, msg.Payload, cause.Error()); err != nil {
		slog.ErrorContext(ctx, "Dead-letter write failed", "topic", msg.Topic, "error", err)
	}
}
