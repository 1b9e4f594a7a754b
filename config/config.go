package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DatabaseConfig holds the datasource strings for the two stores.
type DatabaseConfig struct {
	Phonebook string `json:"pb"`
	AuditLog  string `json:"log"`
}

// Config is the top-level service configuration
type Config struct {
	Database DatabaseConfig `json:"database"`
}

// DefaultConfigPath is used when PHONEBOOK_CONFIG is not set
const DefaultConfigPath = "config.json"

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Phonebook: "phonebook.db",
			AuditLog:  "audit_log.db",
		},
	}
}

// Load reads the configuration file at path. An empty path falls back to
// PHONEBOOK_CONFIG and then DefaultConfigPath; a missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("PHONEBOOK_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Database.Phonebook == "" {
		return nil, fmt.Errorf("config file %s is missing database.pb", path)
	}
	if cfg.Database.AuditLog == "" {
		return nil, fmt.Errorf("config file %s is missing database.log", path)
	}

	return cfg, nil
}
