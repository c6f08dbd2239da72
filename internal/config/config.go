package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration for the OVH TUI application
type Config struct {
	// Endpoint is the base URL of the backend proxy fronting the OVH API
	Endpoint string `json:"endpoint"`

	// Token is the bearer token sent on every proxy request (optional for
	// local proxies without auth)
	Token string `json:"token"`

	// Timeout is the per-request transport timeout (Go duration string)
	Timeout string `json:"timeout"`

	// Theme names a YAML file in the themes directory
	Theme string `json:"theme"`

	// Logging
	LogFile string `json:"log_file"`

	// Keyboard shortcuts
	Keys KeyBindings `json:"keys"`
}

// KeyBindings defines the dashboard key map
type KeyBindings struct {
	Quit           string `json:"quit"`
	Help           string `json:"help"`
	RefreshAll     string `json:"refresh_all"`
	RefreshProfile string `json:"refresh_profile"`
	RefreshRefunds string `json:"refresh_refunds"`
	RefreshEmails  string `json:"refresh_emails"`
	ClearSelection string `json:"clear_selection"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "http://localhost:5000",
		Timeout:  "10s",
		Theme:    "default.yaml",
		Keys: KeyBindings{
			Quit:           "q",
			Help:           "?",
			RefreshAll:     "R",
			RefreshProfile: "1",
			RefreshRefunds: "2",
			RefreshEmails:  "3",
			ClearSelection: "x",
		},
	}
}

// GetTimeout parses the configured transport timeout, falling back to 10s
func (c *Config) GetTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	return 10 * time.Second
}

// LoadConfig loads configuration from a JSON file, layered over defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 - user-provided config path
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration to a JSON file
func (c *Config) SaveConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// DefaultConfigPath returns ~/.config/ovhtui/config.json
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".config", "ovhtui", "config.json")
}

// DefaultThemesDir returns ~/.config/ovhtui/themes
func DefaultThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "themes"
	}
	return filepath.Join(home, ".config", "ovhtui", "themes")
}

// DefaultLogPath returns ~/.config/ovhtui/ovhtui.log
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ovhtui.log"
	}
	return filepath.Join(home, ".config", "ovhtui", "ovhtui.log")
}
