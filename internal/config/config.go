package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines how input files are discovered, how the combined track is
// produced, and how the interactive list is colored.
type Config struct {
	Files struct {
		Patterns []string `yaml:"patterns"` // Glob patterns matched case-insensitively against filenames
	} `yaml:"files"`
	Combine struct {
		SilenceMs int    `yaml:"silence_ms"` // Gap inserted between tracks, in milliseconds
		Format    string `yaml:"format"`     // Output container: mp3 or wav
		Bitrate   string `yaml:"bitrate"`    // Output bitrate for compressed formats
	} `yaml:"combine"`
	Settings struct {
		Debug bool `yaml:"debug"` // Enable debug logging
	} `yaml:"settings"`
	Theme struct {
		Focused string `yaml:"focused"` // Color of the focused row
		Picked  string `yaml:"picked"`  // Color of the picked-up row
		Help    string `yaml:"help"`    // Color of the help text
		Error   string `yaml:"error"`   // Color of error messages
	} `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Files.Patterns = []string{"*.mp3"}
	cfg.Combine.SilenceMs = 3000
	cfg.Combine.Format = "mp3"
	cfg.Combine.Bitrate = "320k"
	cfg.Theme.Focused = "#73F59F"
	cfg.Theme.Picked = "#7B61FF"
	cfg.Theme.Help = "#5A9"
	cfg.Theme.Error = "#FF5F5F"
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/mixtape/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "mixtape", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if len(tempCfg.Files.Patterns) > 0 {
		cfg.Files.Patterns = tempCfg.Files.Patterns
	}
	if tempCfg.Combine.SilenceMs > 0 {
		cfg.Combine.SilenceMs = tempCfg.Combine.SilenceMs
	}
	if tempCfg.Combine.Format != "" {
		cfg.Combine.Format = tempCfg.Combine.Format
	}
	if tempCfg.Combine.Bitrate != "" {
		cfg.Combine.Bitrate = tempCfg.Combine.Bitrate
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Theme.Focused != "" {
		cfg.Theme.Focused = tempCfg.Theme.Focused
	}
	if tempCfg.Theme.Picked != "" {
		cfg.Theme.Picked = tempCfg.Theme.Picked
	}
	if tempCfg.Theme.Help != "" {
		cfg.Theme.Help = tempCfg.Theme.Help
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}

	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
