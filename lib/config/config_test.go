// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}
	if cfg.API.BaseURL != "https://api.hipchat.com" {
		t.Errorf("expected base_url=https://api.hipchat.com, got %s", cfg.API.BaseURL)
	}
	if cfg.Message.Color != "yellow" || cfg.Message.Format != "html" {
		t.Errorf("unexpected message defaults: %+v", cfg.Message)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_RequiresEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when HIPCHAT_CONFIG not set, got nil")
	}

	expectedMsg := "HIPCHAT_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithEnvVar(t *testing.T) {
	configPath := writeConfig(t, "hipchat.yaml", `
environment: staging
api:
  base_url: https://hipchat.internal.example.com
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}
	if cfg.API.BaseURL != "https://hipchat.internal.example.com" {
		t.Errorf("expected custom base_url, got %s", cfg.API.BaseURL)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, "hipchat.yaml", `
environment: production

api:
  base_url: https://hipchat.example.com
  timeout: 5s

auth:
  token_file: /etc/hipchat/token

message:
  from: Deploy Bot
  color: green
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Environment != Production {
		t.Errorf("expected environment=production, got %s", cfg.Environment)
	}
	if cfg.Auth.TokenFile != "/etc/hipchat/token" {
		t.Errorf("expected token_file=/etc/hipchat/token, got %s", cfg.Auth.TokenFile)
	}
	if cfg.Message.From != "Deploy Bot" || cfg.Message.Color != "green" {
		t.Errorf("unexpected message config: %+v", cfg.Message)
	}
	// Unset fields keep their defaults.
	if cfg.Message.Format != "html" {
		t.Errorf("expected format default html, got %s", cfg.Message.Format)
	}

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		t.Fatalf("RequestTimeout failed: %v", err)
	}
	if timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", timeout)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	configPath := writeConfig(t, "hipchat.jsonc", `{
	// Shared settings for the ops group.
	"environment": "staging",
	"api": {
		"base_url": "https://hipchat.example.com", /* self-hosted */
		"timeout": "10s",
	},
	"message": {"from": "Ops"},
}`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}
	if cfg.API.Timeout != "10s" || cfg.Message.From != "Ops" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		configPath := writeConfig(t, "broken.yaml", "api: [unterminated\n")
		if _, err := LoadFile(configPath); err == nil {
			t.Fatal("expected error for malformed YAML")
		}
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	content := `
environment: %s

api:
  base_url: https://hipchat.example.com

message:
  from: Base

development:
  api:
    base_url: http://localhost:8080
  message:
    from: Dev

production:
  auth:
    token_file: /run/secrets/hipchat-token.age
    identity_file: /run/secrets/age-identity
`

	t.Run("development", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "hipchat.yaml", strings.Replace(content, "%s", "development", 1)))
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if cfg.API.BaseURL != "http://localhost:8080" || cfg.Message.From != "Dev" {
			t.Errorf("development overrides not applied: %+v", cfg)
		}
		if cfg.Auth.TokenFile != "" {
			t.Errorf("production overrides leaked into development: %s", cfg.Auth.TokenFile)
		}
	})

	t.Run("production", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "hipchat.yaml", strings.Replace(content, "%s", "production", 1)))
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if cfg.API.BaseURL != "https://hipchat.example.com" || cfg.Message.From != "Base" {
			t.Errorf("base values should survive: %+v", cfg)
		}
		if cfg.Auth.TokenFile != "/run/secrets/hipchat-token.age" || cfg.Auth.IdentityFile != "/run/secrets/age-identity" {
			t.Errorf("production auth overrides not applied: %+v", cfg.Auth)
		}
	})
}

func TestExpandVars(t *testing.T) {
	t.Setenv("HIPCHAT_TEST_HOST", "chat.example.com")
	t.Setenv("HIPCHAT_TEST_EMPTY", "")

	vars := map[string]string{"CONFIG_DIR": "/etc/hipchat"}
	tests := []struct {
		input    string
		expected string
	}{
		{"https://${HIPCHAT_TEST_HOST}", "https://chat.example.com"},
		{"${CONFIG_DIR}/token", "/etc/hipchat/token"},
		{"${HIPCHAT_TEST_EMPTY:-fallback}", "fallback"},
		{"${HIPCHAT_TEST_UNSET:-https://api.hipchat.com}", "https://api.hipchat.com"},
		{"${HIPCHAT_TEST_UNSET}", ""},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := expandVars(test.input, vars); got != test.expected {
			t.Errorf("expandVars(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestLoadFile_ResolvesRelativeAuthPaths(t *testing.T) {
	configPath := writeConfig(t, "hipchat.yaml", `
auth:
  token_file: token.age
  identity_file: ${CONFIG_DIR}/identity
`)
	configDir := filepath.Dir(configPath)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Auth.TokenFile != filepath.Join(configDir, "token.age") {
		t.Errorf("token_file = %s, expected relative to config dir", cfg.Auth.TokenFile)
	}
	if cfg.Auth.IdentityFile != filepath.Join(configDir, "identity") {
		t.Errorf("identity_file = %s, expected expansion of CONFIG_DIR", cfg.Auth.IdentityFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errors []string
	}{
		{"valid", func(*Config) {}, nil},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, []string{"invalid environment"}},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, []string{"api.base_url is required"}},
		{"non-http base url", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, []string{"http or https"}},
		{"bad timeout", func(c *Config) { c.API.Timeout = "soon" }, []string{"api.timeout"}},
		{"negative timeout", func(c *Config) { c.API.Timeout = "-1s" }, []string{"must be positive"}},
		{"identity without token", func(c *Config) { c.Auth.IdentityFile = "/key" }, []string{"auth.token_file is empty"}},
		{"bad format", func(c *Config) { c.Message.Format = "markdown" }, []string{"message.format"}},
		{
			"multiple",
			func(c *Config) {
				c.Environment = "qa"
				c.API.BaseURL = ""
			},
			[]string{"invalid environment", "api.base_url is required"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(cfg)
			err := cfg.Validate()
			if len(test.errors) == 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected errors %v, got nil", test.errors)
			}
			for _, want := range test.errors {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("expected error containing %q, got %v", want, err)
				}
			}
		})
	}
}
