package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMalformedPayload = errors.New("malformed payload")

// TypeUnknown is stored when the message carries no event_type.
const TypeUnknown = "unknown"

// Decoded is the transient result of parsing a message body. Fields keeps
// the original document verbatim so the stored event preserves everything
// the publisher sent; the derived fields augment it without replacing it.
type Decoded struct {
	OccurredAt time.Time
	EventType  string
	Battery    *float64
	RSSI       *float64
	TempC      *float64
	Fields     map[string]any
}

// Decode parses raw bytes as a JSON object. The occurrence timestamp
// defaults to now when the body carries no well-formed occurred_at, the
// event type defaults to "unknown", and the optional health numerics stay
// nil when absent rather than being coerced to zero.
func Decode(raw []byte, now time.Time) (Decoded, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Decoded{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if fields == nil {
		return Decoded{}, fmt.Errorf("%w: body is not a JSON object", ErrMalformedPayload)
	}

	decoded := Decoded{
		OccurredAt: now,
		EventType:  TypeUnknown,
		Fields:     fields,
	}
	if s, ok := fields["occurred_at"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			decoded.OccurredAt = ts
		}
	}
	if s, ok := fields["event_type"].(string); ok && s != "" {
		decoded.EventType = s
	}
	decoded.Battery = numberField(fields, "battery")
	decoded.RSSI = numberField(fields, "rssi")
	decoded.TempC = numberField(fields, "temp_c")
	return decoded, nil
}

func numberField(fields map[string]any, key string) *float64 {
	if v, ok := fields[key].(float64); ok {
		return &v
	}
	return nil
}
