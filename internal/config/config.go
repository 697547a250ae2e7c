package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional expense-tracker YAML configuration.
type Config struct {
	DataFile string         `yaml:"data_file"`
	Currency string         `yaml:"currency,omitempty"` // label shown next to table totals, e.g. "EUR"
	Log      LogConfig      `yaml:"log"`
	AuditLog AuditLogConfig `yaml:"audit_log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AuditLogConfig controls the append-only CSV record of added expenses.
type AuditLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a YAML config file. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("parsing config: data_file must not be empty")
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DataFile: "expenses.json",
		Log: LogConfig{
			Level: "warn",
		},
		AuditLog: AuditLogConfig{
			Enabled: false,
			Path:    "expenses-audit.csv",
		},
	}
}
