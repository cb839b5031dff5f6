package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the carswipe CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - KeyCachePath: bbolt file holding sealed key envelopes per account.
//   - PollInterval: how often `watch` re-fetches an open thread.
type Config struct {
	ServerEndpointAddr string
	KeyCachePath       string
	PollInterval       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.KeyCachePath = "carswipe-keys.db"
	c.PollInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON or TOML file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
