// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable Load reads the config path from.
const EnvVar = "HIPCHAT_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local experimentation against a test group.
	Development Environment = "development"
	// Staging is for pre-production automation.
	Staging Environment = "staging"
	// Production is for automation posting to real rooms.
	Production Environment = "production"
)

// Config is the hipchat command configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment" json:"environment"`

	// API configures the server connection.
	API APIConfig `yaml:"api" json:"api"`

	// Auth locates the API token.
	Auth AuthConfig `yaml:"auth" json:"auth"`

	// Message holds defaults for outgoing messages.
	Message MessageConfig `yaml:"message" json:"message"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *Overrides `yaml:"development,omitempty" json:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty" json:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// Overrides contains the fields that can be overridden per environment.
type Overrides struct {
	API     *APIConfig     `yaml:"api,omitempty" json:"api,omitempty"`
	Auth    *AuthConfig    `yaml:"auth,omitempty" json:"auth,omitempty"`
	Message *MessageConfig `yaml:"message,omitempty" json:"message,omitempty"`
}

// APIConfig configures the server connection.
type APIConfig struct {
	// BaseURL is the API root.
	// Default: https://api.hipchat.com
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Timeout bounds each request, as a Go duration string.
	// Default: 30s
	Timeout string `yaml:"timeout" json:"timeout"`
}

// AuthConfig locates the API token.
type AuthConfig struct {
	// TokenFile holds the API token on its first line. Files ending in
	// .age are decrypted with IdentityFile.
	TokenFile string `yaml:"token_file" json:"token_file"`

	// IdentityFile holds age identities (AGE-SECRET-KEY-1...) for
	// decrypting TokenFile. Setting it forces decryption regardless of
	// the token file's extension.
	IdentityFile string `yaml:"identity_file" json:"identity_file"`
}

// MessageConfig holds defaults for outgoing messages. Flags given on
// the command line take precedence.
type MessageConfig struct {
	// From is the sender name shown in the room.
	// Default: hipchat
	From string `yaml:"from" json:"from"`

	// Color is the message background color.
	// Default: yellow
	Color string `yaml:"color" json:"color"`

	// Format is "html" or "text".
	// Default: html
	Format string `yaml:"format" json:"format"`
}

// Default returns the default configuration, used as the base before
// loading a file and as the whole configuration when there is none.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL: "https://api.hipchat.com",
			Timeout: "30s",
		},
		Message: MessageConfig{
			From:   "hipchat",
			Color:  "yellow",
			Format: "html",
		},
	}
}

// Load loads configuration from the file named by HIPCHAT_CONFIG.
// Fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your hipchat.yaml config file, or use --config flag", EnvVar)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables(filepath.Dir(path))

	return cfg, nil
}

// loadFile merges a single configuration file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// applyEnvironmentOverrides copies the non-empty fields of the section
// matching c.Environment over the base values.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		override(&c.API.BaseURL, overrides.API.BaseURL)
		override(&c.API.Timeout, overrides.API.Timeout)
	}
	if overrides.Auth != nil {
		override(&c.Auth.TokenFile, overrides.Auth.TokenFile)
		override(&c.Auth.IdentityFile, overrides.Auth.IdentityFile)
	}
	if overrides.Message != nil {
		override(&c.Message.From, overrides.Message.From)
		override(&c.Message.Color, overrides.Message.Color)
		override(&c.Message.Format, overrides.Message.Format)
	}
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns. Relative
// auth paths are resolved against configDir.
func (c *Config) expandVariables(configDir string) {
	vars := map[string]string{
		"HOME":       os.Getenv("HOME"),
		"CONFIG_DIR": configDir,
	}

	c.API.BaseURL = expandVars(c.API.BaseURL, vars)
	c.Auth.TokenFile = resolvePath(expandVars(c.Auth.TokenFile, vars), configDir)
	c.Auth.IdentityFile = resolvePath(expandVars(c.Auth.IdentityFile, vars), configDir)
	c.Message.From = expandVars(c.Message.From, vars)
}

func resolvePath(path, dir string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns, consulting
// vars before the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// RequestTimeout parses API.Timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	return timeout, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("api.base_url must be an http or https URL: %s", c.API.BaseURL))
	}

	if timeout, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive: %s", c.API.Timeout))
	}

	if c.Auth.IdentityFile != "" && c.Auth.TokenFile == "" {
		errs = append(errs, fmt.Errorf("auth.identity_file is set but auth.token_file is empty"))
	}

	if c.Message.Format != "" && c.Message.Format != "html" && c.Message.Format != "text" {
		errs = append(errs, fmt.Errorf("message.format must be html or text: %s", c.Message.Format))
	}

	return errors.Join(errs...)
}
