// Package config loads the vboxctl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// GuestAuth holds default guest credentials applied to guestcontrol commands
// when the command line does not override them.
type GuestAuth struct {
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Config is the vboxctl configuration.
type Config struct {
	// VBoxManagePath overrides the platform-resolved binary.
	VBoxManagePath string `yaml:"vboxmanagePath,omitempty"`
	// Debug echoes assembled command lines before execution.
	Debug bool `yaml:"debug,omitempty"`
	// GuestAuth supplies default guest credentials.
	GuestAuth GuestAuth `yaml:"guestAuth,omitempty"`
	// WaitTimeout is the default bound for wait-ip, e.g. "90s".
	// Negative means wait indefinitely.
	WaitTimeout time.Duration `yaml:"waitTimeout,omitempty"`
	// LogFile enables JSON file logging when set.
	LogFile string `yaml:"logFile,omitempty"`
}

// DefaultPath returns the default config file location,
// $HOME/.vboxctl/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vboxctl", "config.yaml")
}

// SetDefaults fills unset fields.
func SetDefaults(cfg *Config) {
	if cfg.WaitTimeout == 0 {
		cfg.WaitTimeout = 90 * time.Second
	}
}

// Load reads and parses the configuration file at path. A missing file at the
// default location is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			SetDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML configuration content and applies defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml config: %w", err)
	}
	SetDefaults(&cfg)
	return &cfg, nil
}
