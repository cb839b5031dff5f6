package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/carswipe/internal/flagx"
	"github.com/dmitrijs2005/carswipe/internal/timex"
)

// FileConfig is a DTO used exclusively for file decoding. After parsing,
// non-empty values are copied into the runtime Config.
type FileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr" toml:"server_endpoint_addr"`
	KeyCachePath       string         `json:"key_cache_path" toml:"key_cache_path"`
	PollInterval       timex.Duration `json:"poll_interval" toml:"poll_interval"`
}

func decodeFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fc := &FileConfig{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return fc, nil
	}

	if err := json.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// parseFile overlays cfg with the file named by -c/-config. It panics on read
// or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlags(args)
	if path == "" {
		return
	}

	fc, err := decodeFile(path)
	if err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.KeyCachePath != "" {
		cfg.KeyCachePath = fc.KeyCachePath
	}
	if fc.PollInterval.Duration > 0 {
		cfg.PollInterval = fc.PollInterval.Duration
	}
}
