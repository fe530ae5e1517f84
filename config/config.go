// Package config loads the daemon's YAML configuration (spec §6): the
// readvertise policy section plus the ambient logging and queue-bound
// settings this implementation adds around it.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// ReadvertiseCfg mirrors spec §6's configuration table, plus the
// signing-identity list the host-to-gateway policy consults.
type ReadvertiseCfg struct {
	// RefreshInterval is in seconds; default 25 (spec §6).
	RefreshInterval int      `yaml:"refresh_interval,omitempty"`
	Identities      []string `yaml:"signing_identities,omitempty"`
}

// QueueCfg bounds the Rib's update queue (spec §7's optional Transient
// error). Zero means unbounded.
type QueueCfg struct {
	MaxDepth int `yaml:"max_depth,omitempty"`
}

// LogCfg configures the ambient logging sink.
type LogCfg struct {
	Path  string `yaml:"path,omitempty"`  // empty: stderr only
	Level string `yaml:"level,omitempty"` // debug|info|warn|error, default info
}

// Config is the top-level daemon configuration.
type Config struct {
	Readvertise ReadvertiseCfg `yaml:"readvertise,omitempty"`
	Queue       QueueCfg       `yaml:"queue,omitempty"`
	Log         LogCfg         `yaml:"log,omitempty"`
}

// DefaultRefreshInterval matches spec §6's documented default.
const DefaultRefreshInterval = 25

// Load reads and parses the YAML config at path. Unrecognized keys are
// ignored silently; nothing is logged for them. A missing refresh_interval
// keeps the default rather than zeroing it out.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a Config, applying defaults for any
// field the source left unset.
func Parse(data []byte) (Config, error) {
	cfg := Config{
		Readvertise: ReadvertiseCfg{RefreshInterval: DefaultRefreshInterval},
	}
	// goccy/go-yaml ignores keys with no matching field by default; they
	// are dropped without being reported.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Readvertise.RefreshInterval <= 0 {
		cfg.Readvertise.RefreshInterval = DefaultRefreshInterval
	}
	return cfg, nil
}
