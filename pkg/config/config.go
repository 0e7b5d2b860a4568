// Package config loads the daemon configuration from a YAML file and
// applies defaults for anything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits a value.
const (
	DefaultPort          = 8080
	DefaultTypingDelayMS = 100
	DefaultTimeoutMS     = 30000.0
)

// Config holds the daemon configuration.
type Config struct {
	// Port is the websocket listen port.
	Port int `yaml:"port"`

	// Headless controls whether the browser runs without a visible window.
	Headless bool `yaml:"headless"`

	// TypingDelayMS is the delay between keystrokes for input_text and
	// type_text, in milliseconds.
	TypingDelayMS int `yaml:"typing_delay_ms"`

	// TimeoutMS is the default engine action timeout in milliseconds.
	TimeoutMS float64 `yaml:"timeout_ms"`

	// LogDir overrides the log directory. Empty means the default under the
	// user's home directory.
	LogDir string `yaml:"log_dir"`

	// Navigation restricts which URLs the navigate command may load.
	Navigation NavigationConfig `yaml:"navigation"`
}

// NavigationConfig holds glob patterns controlling navigation targets.
// Deny patterns win over allow patterns; an empty allow list allows
// everything not denied.
type NavigationConfig struct {
	Allow []string `yaml:"allow"`
	Deny  []string `yaml:"deny"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Port:          DefaultPort,
		Headless:      true,
		TypingDelayMS: DefaultTypingDelayMS,
		TimeoutMS:     DefaultTimeoutMS,
	}
}

// Load reads and validates a YAML configuration file. Unset values fall
// back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TypingDelayMS < 0 {
		return fmt.Errorf("typing delay must not be negative, got %d", c.TypingDelayMS)
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.TimeoutMS)
	}
	return nil
}
