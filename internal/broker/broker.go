package broker

import (
	"context"
	"fmt"
	"log/slog"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Message is one delivery from the broker: the routing topic plus the raw
// body exactly as published.
type Message struct {
	Topic   string
	Payload []byte
}

type Config struct {
	URL      string
	ClientID string
	Username string
	Password string
	Topic    string
	Buffer   int
}

const defaultBuffer = 256

// Subscriber owns the MQTT connection and buffers deliveries into a
// channel that the ingestion worker drains. Subscribing happens in the
// OnConnect handler so the subscription is restored after a reconnect;
// QoS 1 gives the at-least-once delivery the pipeline assumes.
type Subscriber struct {
	client   mqtt.Client
	topic    string
	messages chan Message
}

func New(cfg Config) *Subscriber {
	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	s := &Subscriber{
		topic:    cfg.Topic,
		messages: make(chan Message, buffer),
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetOrderMatters(false).
		SetOnConnectHandler(s.onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			slog.Error("Broker connection lost", "error", err)
		})
	s.client = mqtt.NewClient(opts)
	return s
}

// Connect dials the broker and waits for the connection to be up.
func (s *Subscriber) Connect(ctx context.Context) error {
	token := s.client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt connect: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Subscriber) onConnect(client mqtt.Client) {
	slog.Info("Broker connected, subscribing...", "topic", s.topic)
	token := client.Subscribe(s.topic, 1, s.handleMessage)
	go func() {
		<-token.Done()
		if err := token.Error(); err != nil {
			slog.Error("Subscribe failed", "topic", s.topic, "error", err)
		}
	}()
}

// handleMessage runs on paho's router goroutine; it must not block, so a
// full buffer drops the message and counts on broker redelivery.
func (s *Subscriber) handleMessage(_ mqtt.Client, m mqtt.Message) {
	body := make([]byte, len(m.Payload()))
	copy(body, m.Payload())
	select {
	case s.messages <- Message{Topic: m.Topic(), Payload: body}:
	default:
		slog.Warn("Ingest buffer full, message dropped", "topic", m.Topic())
	}
}

// Next blocks until a message is available or the context ends.
func (s *Subscriber) Next(ctx context.Context) (Message, error) {
	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case m := <-s.messages:
		return m, nil
	}
}

func (s *Subscriber) Close() {
	s.client.Disconnect(250)
}
