package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingSetting = errors.New("missing required setting")

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	MigrationsPath string
	MQTTURL        string
	MQTTUsername   string
	MQTTPassword   string
	MQTTTopic      string
	MQTTClientID   string
	// Channels is the accepted set of topic channel segments.
	Channels     []string
	IngestBuffer int
}

// Load reads configuration from the environment. Only the broker and
// datastore URLs are required; everything else has a default.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("MIGRATIONS_PATH", "./internal/db/migrations")
	v.SetDefault("MQTT_TOPIC", "+/+/+/+/evt")
	v.SetDefault("MQTT_CLIENT_ID", "telemetry-ingest")
	v.SetDefault("INGEST_CHANNELS", "evt")
	v.SetDefault("INGEST_BUFFER", 256)

	cfg := Config{
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		MQTTURL:        v.GetString("MQTT_URL"),
		MQTTUsername:   v.GetString("MQTT_USERNAME"),
		MQTTPassword:   v.GetString("MQTT_PASSWORD"),
		MQTTTopic:      v.GetString("MQTT_TOPIC"),
		MQTTClientID:   v.GetString("MQTT_CLIENT_ID"),
		IngestBuffer:   v.GetInt("INGEST_BUFFER"),
	}
	for _, channel := range strings.Split(v.GetString("INGEST_CHANNELS"), ",") {
		if channel = strings.TrimSpace(channel); channel != "" {
			cfg.Channels = append(cfg.Channels, channel)
		}
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("%w: DATABASE_URL", ErrMissingSetting)
	}
	if cfg.MQTTURL == "" {
		return Config{}, fmt.Errorf("%w: MQTT_URL", ErrMissingSetting)
	}
	return cfg, nil
}
