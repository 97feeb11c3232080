package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

agent:
  url: ws://localhost:9999/events
  reconnect_delay: 2s

database:
  dsn: "file:test.db?cache=shared"
  max_open_conns: 20

watcher:
  poll_interval: 500ms
  resolve_attempts: 3
  resolve_initial: 250ms
  resolve_step: 100ms
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "ws://localhost:9999/events", cfg.Agent.URL)
		assert.Equal(t, 2*time.Second, cfg.Agent.ReconnectDelay)
		assert.Equal(t, "file:test.db?cache=shared", cfg.Database.DSN)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 500*time.Millisecond, cfg.Watcher.PollInterval)
		assert.Equal(t, 3, cfg.Watcher.ResolveAttempts)
		assert.Equal(t, 250*time.Millisecond, cfg.Watcher.ResolveInitial)
		assert.Equal(t, 100*time.Millisecond, cfg.Watcher.ResolveStep)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":9090\"\n"))
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "ws://127.0.0.1:8765/events", cfg.Agent.URL)
		assert.Equal(t, 5*time.Second, cfg.Agent.ReconnectDelay)
		assert.Equal(t, "file:deckwatch.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, time.Second, cfg.Watcher.PollInterval)
		assert.Equal(t, 5, cfg.Watcher.ResolveAttempts)
		assert.Equal(t, 500*time.Millisecond, cfg.Watcher.ResolveInitial)
		assert.Equal(t, 300*time.Millisecond, cfg.Watcher.ResolveStep)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_AGENT_URL", "ws://agent-host:7777/events")
		cfg, err := Load(writeConfig(t, "agent:\n  url: ${TEST_AGENT_URL}\n"))
		require.NoError(t, err)
		assert.Equal(t, "ws://agent-host:7777/events", cfg.Agent.URL)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			errMsg  string
		}{
			{"short server timeout", "server:\n  timeout: 100ms\n", "server timeout must be at least 1 second"},
			{"short reconnect delay", "agent:\n  reconnect_delay: 10ms\n", "reconnect_delay must be at least 1 second"},
			{"short poll interval", "watcher:\n  poll_interval: 10ms\n", "poll_interval must be at least 100ms"},
			{"negative resolve attempts", "watcher:\n  resolve_attempts: -1\n", "resolve_attempts must be at least 1"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tt.content))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "ws://127.0.0.1:8765/events", cfg.Agent.URL)
	assert.Equal(t, time.Second, cfg.Watcher.PollInterval)
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 45 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestConfig_GetWatcherConfig(t *testing.T) {
	cfg := Default()
	wc := cfg.GetWatcherConfig()
	assert.Equal(t, 5, wc.ResolveAttempts)
	assert.Equal(t, 300*time.Millisecond, wc.ResolveStep)
}
