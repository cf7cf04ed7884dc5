// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/lib/secret"
)

// PasswordSource holds the flags that choose where a new password comes
// from. Passwords are never accepted as flag values, which would leave
// them in the process list and shell history.
type PasswordSource struct {
	Prompt bool `flag:"password-prompt" desc:"prompt for a password on the terminal"`
	Stdin  bool `flag:"password-stdin" desc:"read the password from the first line of stdin"`
}

// read returns the password, or nil when neither flag is set. The
// caller must close the returned buffer.
func (p PasswordSource) read(streams cli.Streams) (*secret.Buffer, error) {
	switch {
	case p.Prompt && p.Stdin:
		return nil, cli.Validation("--password-prompt and --password-stdin are mutually exclusive")
	case p.Prompt:
		return promptPassword(streams.In)
	case p.Stdin:
		return readPasswordLine(streams.In)
	default:
		return nil, nil
	}
}

func promptPassword(input io.Reader) (*secret.Buffer, error) {
	file, ok := input.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil, cli.Validation("--password-prompt needs an interactive terminal; use --password-stdin in scripts")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, cli.Internal("reading password: %w", err)
	}
	if len(password) == 0 {
		return nil, cli.Validation("password is empty")
	}
	return secret.NewFromBytes(password)
}

func readPasswordLine(input io.Reader) (*secret.Buffer, error) {
	buffer, err := secret.ReadLine(input)
	if err != nil {
		return nil, cli.Validation("password from stdin: %w", err)
	}
	return buffer, nil
}
