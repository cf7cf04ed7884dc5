// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/hipchat"
	"github.com/bureau-foundation/hipchat/lib/config"
	"github.com/bureau-foundation/hipchat/lib/secret"
)

// Connection holds the flags shared by every command that talks to the
// API. Values given as flags override the configuration file.
//
//	type showParams struct {
//	    cli.Connection
//	    cli.JSONOutput
//	}
//
//	session, err := params.Connect()
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
type Connection struct {
	ConfigFile string
	BaseURL    string
	Token      string
	TokenFile  string
	Timeout    time.Duration
	Verbose    bool
}

// AddFlags registers the connection flags on flagSet.
func (c *Connection) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.ConfigFile, "config", "", "path to config file (default $"+config.EnvVar+")")
	flagSet.StringVar(&c.BaseURL, "base-url", "", "API base URL (overrides config)")
	flagSet.StringVar(&c.Token, "token", "", "API auth token; prefer --token-file, which keeps the token out of the process list")
	flagSet.StringVar(&c.TokenFile, "token-file", "", "file holding the API token, optionally age-encrypted, or - for stdin (overrides config)")
	flagSet.DurationVar(&c.Timeout, "timeout", 0, "per-request timeout (overrides config)")
	flagSet.BoolVarP(&c.Verbose, "verbose", "v", false, "log each API request to stderr")
}

// Session is a connected client plus the configuration it was built from.
type Session struct {
	API    hipchat.API
	Config *config.Config
	Logger *slog.Logger
}

// Close releases the client's token memory.
func (s *Session) Close() error {
	return s.API.Close()
}

// LoadConfig loads the file named by --config, falling back to
// $HIPCHAT_CONFIG, and to the built-in defaults when neither is set.
func (c *Connection) LoadConfig() (*config.Config, error) {
	path := c.ConfigFile
	if path == "" {
		path = os.Getenv(config.EnvVar)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.BaseURL != "" {
		cfg.API.BaseURL = c.BaseURL
	}
	if c.Timeout != 0 {
		cfg.API.Timeout = c.Timeout.String()
	}
	if c.TokenFile != "" {
		cfg.Auth.TokenFile = c.TokenFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Connect loads the configuration, reads the token, and builds a client.
// The caller must Close the returned session.
func (c *Connection) Connect() (*Session, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	token, err := c.loadToken(cfg)
	if err != nil {
		return nil, err
	}
	defer token.Close()

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, Validation("%w", err)
	}
	logger := NewCommandLogger(c.Verbose)
	client, err := hipchat.NewClient(hipchat.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		AuthToken: token.String(),
		Timeout:   timeout,
		Logger:    logger,
	})
	if err != nil {
		return nil, Validation("%w", err)
	}

	return &Session{API: client, Config: cfg, Logger: logger}, nil
}

func (c *Connection) loadToken(cfg *config.Config) (*secret.Buffer, error) {
	if c.Token != "" {
		return secret.NewFromString(c.Token)
	}
	if cfg.Auth.TokenFile == "" {
		return nil, Validation("no API token: use --token-file, --token, or set auth.token_file in the config file")
	}
	token, err := cfg.LoadToken()
	if err != nil {
		return nil, Validation("%w", err)
	}
	return token, nil
}

// CommandContext returns a context cancelled on SIGINT or SIGTERM.
func CommandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
