package topic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTopic = errors.New("invalid topic")

const segmentCount = 5

// Identity holds the device identity a telemetry topic encodes, in
// segment order: ENV/OWNER/LOCATION/DEVICE/CHANNEL.
type Identity struct {
	Env      string
	OwnerID  string
	Location string
	DeviceID string
	Channel  string
}

// Parse decodes a subscription topic into its identity fields. A single
// leading separator is tolerated; anything other than exactly five
// non-empty segments fails with ErrInvalidTopic. Identifier segments are
// not checked for UUID shape here; the datastore rejects them later.
func Parse(topic string) (Identity, error) {
	parts := strings.Split(strings.TrimPrefix(topic, "/"), "/")
	if len(parts) != segmentCount {
		return Identity{}, fmt.Errorf("%w: %q has %d segments", ErrInvalidTopic, topic, len(parts))
	}
	for _, part := range parts {
		if part == "" {
			return Identity{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidTopic, topic)
		}
	}
	return Identity{
		Env:      parts[0],
		OwnerID:  parts[1],
		Location: parts[2],
		DeviceID: parts[3],
		Channel:  parts[4],
	}, nil
}
