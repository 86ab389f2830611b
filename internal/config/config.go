// Package config loads the relay configuration from environment variables.
//
// Configuration is read once at startup into an immutable Config struct
// which is passed explicitly to the components that need it. The process
// refuses to start when a required variable is missing.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the process-wide configuration.
type Config struct {
	// ServerHost is the address the webhook server binds to (SERVER_HOST).
	ServerHost string `koanf:"server_host"`
	// ServerPort is the webhook server listen port (SERVER_PORT).
	ServerPort int `koanf:"server_port"`
	// LogLevel is the minimum log level (LOG_LEVEL).
	LogLevel string `koanf:"log_level"`
	// DryRun logs notifications instead of sending them (DRYRUN).
	DryRun bool `koanf:"dryrun"`
	// WebhookSecret, when set, restricts the webhook endpoint to the
	// path /<secret> (WEBHOOK_SECRET).
	WebhookSecret string `koanf:"webhook_secret"`
	// BotToken is the Telegram bot token, required (BOT_TOKEN).
	BotToken string `koanf:"bot_token"`
	// ChatID is the Telegram chat to notify, required (CHAT_ID).
	ChatID string `koanf:"chat_id"`
}

func defaultConfig() *Config {
	return &Config{
		ServerHost: "0.0.0.0",
		ServerPort: 9000,
		LogLevel:   "WARNING",
		DryRun:     false,
	}
}

// Load builds the configuration from built-in defaults overridden by
// environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// SERVER_PORT -> server_port etc; unknown keys are simply never
	// unmarshaled into the struct.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if c.ChatID == "" {
		missing = append(missing, "CHAT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.ServerPort)
	}

	return nil
}

// Addr returns the host:port listen address for the webhook server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}
