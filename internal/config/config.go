// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	File string `json:"file,omitempty"` // Path to the resume document to parse

	// Credentials
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	GitHubToken string `json:"github_token,omitempty"` // Code-hosting API token

	// Behavior
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Use headless browser for SPA portfolio sites
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-request network timeout
	OutDir         string `json:"out_dir,omitempty"`         // Directory for JSON output files
}

// DefaultTimeoutSeconds is used when no timeout is configured.
const DefaultTimeoutSeconds = 30

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.File)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.File == "" {
		result.File = defaults.File
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.TimeoutSeconds == 0 {
		if defaults.TimeoutSeconds > 0 {
			result.TimeoutSeconds = defaults.TimeoutSeconds
		} else {
			result.TimeoutSeconds = DefaultTimeoutSeconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
