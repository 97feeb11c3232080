package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP API listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=HTTP API configuration"`

	Agent struct {
		URL            string        `yaml:"url" json:"url" jsonschema:"default=ws://127.0.0.1:8765/events,description=Websocket URL of the browser agent"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay" json:"reconnect_delay" jsonschema:"default=5s,description=Delay before reconnecting to the agent"`
	} `yaml:"agent" json:"agent" jsonschema:"description=Browser agent stream configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:deckwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Watcher WatcherConfig `yaml:"watcher" json:"watcher" jsonschema:"description=Navigation watcher configuration"`
}

// WatcherConfig holds navigation watcher and title resolver tuning
type WatcherConfig struct {
	PollInterval    time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=1s,description=Polling fallback interval for client-side navigations"`
	ResolveAttempts int           `yaml:"resolve_attempts" json:"resolve_attempts" jsonschema:"default=5,minimum=1,description=Maximum title scrape attempts per navigation"`
	ResolveInitial  time.Duration `yaml:"resolve_initial" json:"resolve_initial" jsonschema:"default=500ms,description=Delay before the first scrape attempt"`
	ResolveStep     time.Duration `yaml:"resolve_step" json:"resolve_step" jsonschema:"default=300ms,description=Per-attempt delay increment between scrape retries"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for agent stream
	if c.Agent.URL == "" {
		c.Agent.URL = "ws://127.0.0.1:8765/events"
	}
	if c.Agent.ReconnectDelay == 0 {
		c.Agent.ReconnectDelay = 5 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:deckwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for watcher
	if c.Watcher.PollInterval == 0 {
		c.Watcher.PollInterval = time.Second
	}
	if c.Watcher.ResolveAttempts == 0 {
		c.Watcher.ResolveAttempts = 5
	}
	if c.Watcher.ResolveInitial == 0 {
		c.Watcher.ResolveInitial = 500 * time.Millisecond
	}
	if c.Watcher.ResolveStep == 0 {
		c.Watcher.ResolveStep = 300 * time.Millisecond
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate agent config
	if cfg.Agent.URL == "" {
		return fmt.Errorf("agent.url is required")
	}
	if cfg.Agent.ReconnectDelay < time.Second {
		return fmt.Errorf("agent.reconnect_delay must be at least 1 second")
	}

	// validate watcher config
	if cfg.Watcher.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("watcher.poll_interval must be at least 100ms")
	}
	if cfg.Watcher.ResolveAttempts < 1 {
		return fmt.Errorf("watcher.resolve_attempts must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetWatcherConfig returns navigation watcher configuration
func (c *Config) GetWatcherConfig() WatcherConfig {
	return c.Watcher
}
