package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/gateway-dashboard/pkg/latency"
	"github.com/chris/gateway-dashboard/pkg/validation"
)

var DefaultConfig = []byte(`
application: "gateway-dashboard"

logger:
  level: "debug"

is_prod_mode: false

http:
  port: 8080
  shutdown_timeout: "10s"

websocket:
  enabled: true

latency:
  enabled: true
  delays:
    authenticate: "1000ms"
    fetch_wallet_balance: "800ms"
    fetch_transactions: "600ms"
    create_transaction: "1200ms"
    fetch_users: "700ms"
    toggle_user_status: "500ms"
    fetch_payment_summaries: "900ms"
    fetch_system_stats: "1000ms"
    add_admin: "800ms"
    remove_admin: "600ms"
`)

type Config struct {
	Application string    `koanf:"application"`
	Logger      Logger    `koanf:"logger"`
	IsProdMode  bool      `koanf:"is_prod_mode"`
	HTTP        HTTP      `koanf:"http"`
	Websocket   Websocket `koanf:"websocket"`
	Latency     Latency   `koanf:"latency"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type HTTP struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type Websocket struct {
	Enabled bool `koanf:"enabled"`
}

// Latency configures the simulated round trip of each mock backend call.
type Latency struct {
	Enabled bool                     `koanf:"enabled"`
	Delays  map[string]time.Duration `koanf:"delays"`
}

// Addr is the listen address of the HTTP server.
func (h HTTP) Addr() string {
	return fmt.Sprintf(":%d", h.Port)
}

// Simulator builds the latency simulator. Operations without a configured delay use the defaults.
func (l Latency) Simulator() *latency.Simulator {
	if !l.Enabled {
		return latency.Disabled()
	}
	delays := make(map[latency.Operation]time.Duration, len(latency.Defaults))
	for op, d := range latency.Defaults {
		delays[op] = d
	}
	for name, d := range l.Delays {
		delays[latency.Operation(name)] = d
	}
	return latency.New(delays)
}

// SlogLevel parses the configured log level.
func (l Logger) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := validation.New()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	} else if _, err := c.Logger.SlogLevel(); err != nil {
		ve.Add("logger.level", "must be one of debug, info, warn, error")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		ve.Add("http.port", "must be between 1 and 65535")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		ve.Add("http.shutdown_timeout", "must be positive")
	}
	for name, d := range c.Latency.Delays {
		key := "latency.delays." + name
		if _, ok := latency.Defaults[latency.Operation(name)]; !ok {
			ve.Add(key, "unknown operation")
		}
		if d < 0 {
			ve.Add(key, "cannot be negative")
		}
	}

	return ve.Err()
}

// envKey maps DASHBOARD_HTTP__PORT to http.port.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
