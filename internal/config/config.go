// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Default settings applied when neither the config file nor the environment
// provides a value.
const (
	DefaultPort      = 8080
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config holds everything the pipeline and server need. It is constructed
// once at startup and passed by reference into each component; no package
// reads configuration globally.
type Config struct {
	// GeminiAPIKey authenticates the model-service calls. Required before
	// any network call is attempted.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	// DatabaseURL is the PostgreSQL connection string for the document store.
	DatabaseURL string `json:"database_url,omitempty"`
	// TikaURL points at the Apache Tika server used to decode Word documents.
	TikaURL string `json:"tika_url,omitempty"`

	Port      int    `json:"port,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
}

// Load reads a JSON config file. An empty path yields an empty Config so
// environment variables alone can configure the service.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Environment
// values win over file values, matching how the original deployment passed
// its credentials.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("TIKA_URL"); v != "" {
		c.TikaURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// Validate checks the configuration and fills defaults. The model-service
// credential is checked here, at construction time, so its absence surfaces
// as a configuration error rather than a per-call failure.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: gemini API key is required (set GEMINI_API_KEY or gemini_api_key)")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is required (set DATABASE_URL or database_url)")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	return nil
}
