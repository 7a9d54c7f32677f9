// Package config loads runtime settings for the collector agent from an
// optional YAML file with environment overrides. Precedence, lowest to
// highest: built-in defaults, config file, FSO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the agent's runtime settings.
type Config struct {
	Model         string `yaml:"model"`
	TokenBudget   int    `yaml:"token_budget"`
	StateDir      string `yaml:"state_dir"`
	Observe       bool   `yaml:"observe"`
	VerboseWindow bool   `yaml:"verbose_window_logs"`
}

const (
	defaultTokenBudget = 50000
	defaultStateDir    = ".agent"
)

var (
	once    sync.Once
	cached  Config
	loadErr error
)

// Load returns the process-wide configuration, resolving it on first call.
func Load() (Config, error) {
	once.Do(func() {
		cached, loadErr = load()
	})
	return cached, loadErr
}

// load resolves defaults, then the config file, then env overrides. Split
// from Load so tests can exercise it without the sync.Once cache.
func load() (Config, error) {
	cfg := Config{
		TokenBudget: defaultTokenBudget,
		StateDir:    defaultStateDir,
	}

	path := os.Getenv("FSO_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultStateDir + "/config.yaml"
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Optional default file; carry on with defaults.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if v := os.Getenv("FSO_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FSO_TOKEN_BUDGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid FSO_TOKEN_BUDGET %q: %w", v, err)
		}
		cfg.TokenBudget = n
	}
	if v := os.Getenv("FSO_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("FSO_OBSERVE_JSON"); v != "" {
		cfg.Observe = v == "1"
	}
	if v := os.Getenv("FSO_VERBOSE_WINDOW_LOGS"); v != "" {
		cfg.VerboseWindow = v == "1"
	}

	if cfg.TokenBudget <= 0 {
		return Config{}, fmt.Errorf("config: token_budget must be positive, got %d", cfg.TokenBudget)
	}
	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir
	}
	return cfg, nil
}

// Export materializes the resolved config into the FSO_* variables that the
// telemetry and windowing packages read live.
func (c Config) Export() {
	os.Setenv("FSO_STATE_DIR", c.StateDir)
	if c.Observe {
		os.Setenv("FSO_OBSERVE_JSON", "1")
	}
	if c.VerboseWindow {
		os.Setenv("FSO_VERBOSE_WINDOW_LOGS", "1")
	}
}
