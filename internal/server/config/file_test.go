package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTempJSON(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	return writeTemp(t, name, string(b))
}

func Test_parseFile(t *testing.T) {
	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, "server.json", map[string]any{
			"endpoint_addr_grpc":             "www.example:9000",
			"database_dsn":                   "postgres://db",
			"secret_key":                     "my_secret_key",
			"access_token_validity_duration": "1m",
			"metrics_addr":                   ":9191",
			"log_level":                      "warn",
		})

		cfg := &Config{}
		parseFile(cfg, []string{"-config", path})

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 1*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, ":9191", cfg.MetricsAddr)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("loads from toml", func(t *testing.T) {
		path := writeTemp(t, "server.toml", `
endpoint_addr_grpc = "0.0.0.0:7000"
secret_key = "toml-secret"
access_token_validity_duration = "2h"
`)
		cfg := &Config{DatabaseDSN: "keep-me"}
		parseFile(cfg, []string{"-c", path})

		assert.Equal(t, "0.0.0.0:7000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "toml-secret", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "keep-me", cfg.DatabaseDSN)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: "defaults:1234", AccessTokenValidityDuration: 2 * time.Minute}
		parseFile(cfg, []string{"-a", "x"})

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, 2*time.Minute, cfg.AccessTokenValidityDuration)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.json", `{ this is not valid json`)
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	})

	t.Run("invalid toml panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.toml", `secret_key = `)
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", "/nonexistent/carswipe.toml"}) })
	})
}
