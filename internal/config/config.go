package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	REST          RESTConfig          `yaml:"rest"`
	Security      SecurityConfig      `yaml:"security"`
	Logging       LoggingConfig       `yaml:"logging"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	Websocket     WebsocketConfig     `yaml:"websocket"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type RESTConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	RetryMax int           `yaml:"retry_max"`
}

type SecurityConfig struct {
	JWTSecret    string `yaml:"jwt_secret"`
	JWTPublicKey string `yaml:"jwt_public_key"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
}

// KafkaConfig lists, per entity, the upstream topics whose events refresh
// the matching list views.
type KafkaConfig struct {
	Brokers []string            `yaml:"brokers"`
	GroupID string              `yaml:"group_id"`
	Topics  map[string][]string `yaml:"topics"`
}

type WebsocketConfig struct {
	AllowedActions []string `yaml:"allowed_actions"`
}

type NotificationsConfig struct {
	ErrorDuration   time.Duration `yaml:"error_duration"`
	WarningDuration time.Duration `yaml:"warning_duration"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{Port: "8080", ShutdownTimeout: 10 * time.Second},
		REST:   RESTConfig{BaseURL: "http://localhost:3000", Timeout: 10 * time.Second, RetryMax: 2},
		Logging: LoggingConfig{
			Directory: "./logs",
			Level:     "info",
			Format:    "text",
		},
		Kafka: KafkaConfig{
			GroupID: "tracker-mobility-bff",
			Topics: map[string][]string{
				"orders":    {"tracker.orders"},
				"reports":   {"tracker.reports"},
				"verifiers": {"tracker.verifiers"},
			},
		},
		Websocket:     WebsocketConfig{AllowedActions: []string{"created", "updated", "deleted", "assigned", "reviewed"}},
		Notifications: NotificationsConfig{ErrorDuration: 5 * time.Second, WarningDuration: 4 * time.Second},
	}
}

// Load resolves configuration in priority order: defaults, then the YAML
// file at path (skipped when path is empty or missing), then environment.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.Server.Port = envOrDefault("PORT", cfg.Server.Port)
	cfg.Server.ShutdownTimeout = envDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.REST.BaseURL = envOrDefault("REST_BASE_URL", cfg.REST.BaseURL)
	cfg.REST.Timeout = envDuration("REST_TIMEOUT", cfg.REST.Timeout)
	cfg.REST.RetryMax = envInt("REST_RETRY_MAX", cfg.REST.RetryMax)
	cfg.Security.JWTSecret = envOrDefault("JWT_SECRET", cfg.Security.JWTSecret)
	cfg.Security.JWTPublicKey = envOrDefault("JWT_PUBLIC_KEY", cfg.Security.JWTPublicKey)
	cfg.Logging.Directory = envOrDefault("LOG_DIR", cfg.Logging.Directory)
	cfg.Logging.Level = envOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = envOrDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.Kafka.Brokers = envCSV("KAFKA_BROKERS", envCSV("KAFKA_BROKER", cfg.Kafka.Brokers))
	cfg.Kafka.GroupID = envOrDefault("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.Topics = envTopics("KAFKA_TOPICS", cfg.Kafka.Topics)
	cfg.Websocket.AllowedActions = envCSV("WS_ALLOWED_ACTIONS", cfg.Websocket.AllowedActions)
	cfg.Notifications.ErrorDuration = envDuration("NOTIFY_ERROR_DURATION", cfg.Notifications.ErrorDuration)
	cfg.Notifications.WarningDuration = envDuration("NOTIFY_WARNING_DURATION", cfg.Notifications.WarningDuration)

	if cfg.Security.JWTSecret == "" && cfg.Security.JWTPublicKey == "" {
		return nil, errors.New("missing JWT_SECRET or JWT_PUBLIC_KEY")
	}
	return &cfg, nil
}

// AllTopics flattens the per-entity topic lists.
func (k KafkaConfig) AllTopics() []string {
	topics := make([]string, 0)
	for _, list := range k.Topics {
		topics = append(topics, list...)
	}
	return topics
}

func envOrDefault(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envDuration accepts Go durations ("750ms") or plain seconds ("5").
func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// envTopics parses "orders=a|b;reports=c" into a per-entity topic map.
func envTopics(name string, fallback map[string][]string) map[string][]string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	topics := make(map[string][]string)
	for _, entry := range strings.Split(raw, ";") {
		entity, list, ok := strings.Cut(entry, "=")
		entity = strings.ToLower(strings.TrimSpace(entity))
		if !ok || entity == "" {
			continue
		}
		for _, topic := range strings.Split(list, "|") {
			if trimmed := strings.TrimSpace(topic); trimmed != "" {
				topics[entity] = append(topics[entity], trimmed)
			}
		}
	}
	if len(topics) == 0 {
		return fallback
	}
	return topics
}
