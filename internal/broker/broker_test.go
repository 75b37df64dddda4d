package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	topic   string
	payload []byte
}

func (f fakeDelivery) Duplicate() bool   { return false }
func (f fakeDelivery) Qos() byte         { return 1 }
func (f fakeDelivery) Retained() bool    { return false }
func (f fakeDelivery) Topic() string     { return f.topic }
func (f fakeDelivery) MessageID() uint16 { return 1 }
func (f fakeDelivery) Payload() []byte   { return f.payload }
func (f fakeDelivery) Ack()              {}

func Test_HandleMessageThenNext(t *testing.T) {
	s := &Subscriber{
		topic:    "+/+/+/+/evt",
		messages: make(chan Message, 2),
	}

	raw := []byte(`{"event_type":"motion"}`)
	s.handleMessage(nil, fakeDelivery{topic: "env1/owner/loc/device/evt", payload: raw})

	// The payload is copied, so mutating the delivery's buffer after the
	// handler returns must not reach the consumer.
	raw[0] = 'X'

	msg, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env1/owner/loc/device/evt", msg.Topic)
	assert.Equal(t, []byte(`{"event_type":"motion"}`), msg.Payload)
}

func Test_HandleMessageDropsWhenFull(t *testing.T) {
	s := &Subscriber{
		topic:    "+/+/+/+/evt",
		messages: make(chan Message, 1),
	}

	s.handleMessage(nil, fakeDelivery{topic: "a/b/c/d/evt", payload: []byte("1")})
	s.handleMessage(nil, fakeDelivery{topic: "a/b/c/d/evt", payload: []byte("2")})

	msg, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), msg.Payload)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = s.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
