package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServeConfig holds the server settings, loaded from a YAML file and
// overridable by flags.
type ServeConfig struct {
	Addr string `yaml:"addr"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		// TTL is a Go duration string, e.g. "24h".
		TTL string `yaml:"ttl"`
	} `yaml:"redis"`

	Profile struct {
		BaseURL   string `yaml:"base_url"`
		AuthToken string `yaml:"auth_token"`
		DryRun    bool   `yaml:"dry_run"`
	} `yaml:"profile"`

	Security struct {
		MaskPII bool `yaml:"mask_pii"`
		// EncryptionKey is a base64-encoded 32-byte key. Empty disables
		// encryption at rest.
		EncryptionKey string   `yaml:"encryption_key"`
		FallbackKeys  []string `yaml:"fallback_keys"`
	} `yaml:"security"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// DefaultServeConfig returns the settings used when no config file is given.
func DefaultServeConfig() ServeConfig {
	var cfg ServeConfig
	cfg.Addr = ":8080"
	cfg.Redis.TTL = "24h"
	cfg.Profile.DryRun = true
	cfg.Metrics.Enabled = true
	return cfg
}

// LoadServeConfig reads and validates a YAML config file.
func LoadServeConfig(path string) (ServeConfig, error) {
	cfg := DefaultServeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if _, err := cfg.sessionTTL(); err != nil {
		return cfg, err
	}
	if _, err := cfg.encryptionKeys(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// sessionTTL parses the configured Redis TTL, defaulting to 24 hours.
func (c ServeConfig) sessionTTL() (time.Duration, error) {
	if c.Redis.TTL == "" {
		return 24 * time.Hour, nil
	}
	ttl, err := time.ParseDuration(c.Redis.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid redis ttl: %w", err)
	}
	return ttl, nil
}

// encryptionKeys decodes the configured keys. The first return value is nil
// when encryption is disabled.
func (c ServeConfig) encryptionKeys() ([][]byte, error) {
	if c.Security.EncryptionKey == "" {
		return nil, nil
	}
	keys := make([][]byte, 0, 1+len(c.Security.FallbackKeys))
	for _, enc := range append([]string{c.Security.EncryptionKey}, c.Security.FallbackKeys...) {
		key, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return nil, fmt.Errorf("invalid encryption key: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
		}
		keys = append(keys, key)
	}
	return keys, nil
}
