package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const yamlConfig = `
api:
  title: Inventory
  version: 3.0.0
  description: inventory service
  swagger:
    url: /docs
    disable_ui: true
server:
  address: 127.0.0.1:9000
  read_timeout: 2s
  shutdown_timeout: 4s
logging:
  format: console
  strict_level: true
`

const jsonConfig = `{
  "api": {
    "title": "Inventory",
    "version": "3.0.0",
    "description": "inventory service",
    "swagger": {"url": "/docs", "disable_ui": true}
  },
  "server": {"address": "127.0.0.1:9000", "read_timeout": "2s", "shutdown_timeout": 4000000000},
  "logging": {"format": "console", "strict_level": true}
}`

func TestParseFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "config.yaml", content: yamlConfig},
		{name: "yml", file: "config.yml", content: yamlConfig},
		{name: "json", file: "config.json", content: jsonConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseFile(writeTempConfig(t, tt.file, tt.content))

			require.NoError(t, err)
			assert.Equal(t, "Inventory", cfg.API.Title)
			assert.Equal(t, "3.0.0", cfg.API.Version)
			assert.Equal(t, "inventory service", cfg.API.Description)
			assert.Equal(t, "/docs", cfg.API.Swagger.URL)
			assert.True(t, cfg.API.Swagger.DisableUI)
			assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
			assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
			assert.Equal(t, 4*time.Second, cfg.Server.ShutdownTimeout)
			assert.Zero(t, cfg.Server.WriteTimeout)
			assert.Equal(t, "console", cfg.Logging.Format)
			assert.True(t, cfg.Logging.StrictLevel)
			assert.Empty(t, cfg.JSONFilePath)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	_, _, err := parseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading a config file")

	_, _, err = parseFile(writeTempConfig(t, "config.toml", "title = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)

	_, _, err = parseFile(writeTempConfig(t, "config.json", "{not json"))
	assert.ErrorContains(t, err, "error decoding json configs")

	_, _, err = parseFile(writeTempConfig(t, "config.yaml", "api: [unterminated"))
	assert.ErrorContains(t, err, "error decoding yaml configs")

	_, _, err = parseFile(writeTempConfig(t, "config.yaml", "server:\n  read_timeout: later\n"))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestParseFile_ExplicitKeys(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "api:\n  swagger:\n    disable_ui: false\nserver:\n  idle_timeout: 0s\n")

	cfg, explicit, err := parseFile(path)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{keySwaggerDisableUI, keyServerIdleTimeout}, explicit)
	assert.Zero(t, cfg.Server.IdleTimeout)
}
