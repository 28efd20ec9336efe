// config.go - Configuration management for the proof checker

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	// Input
	ProofsPath string `json:"proofs_path"`
	RootHex    string `json:"root_hex"`

	// Protocol settings
	FeeDenom string `json:"fee_denom"`
	// Clearing price applied by the harness execution function, as a rational
	// price_num/price_den.
	PriceNum uint64 `json:"price_num"`
	PriceDen uint64 `json:"price_den"`

	// Performance
	Workers int `json:"workers"`

	// Logging
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ProofsPath: "proofs.json",
		FeeDenom:   "upool",
		PriceNum:   1,
		PriceDen:   1,
		Workers:    4,
		LogLevel:   "info",
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		var config Config
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		return &config, nil
	}

	// Create default config and save it
	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}
	return config, nil
}

// SaveConfig writes the configuration to disk
func SaveConfig(config *Config, configPath string) error {
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(config)
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	if c.ProofsPath == "" {
		return fmt.Errorf("proofs_path is required")
	}
	if c.PriceDen == 0 {
		return fmt.Errorf("price_den must be non-zero")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0")
	}
	return nil
}
