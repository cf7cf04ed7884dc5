// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// hipchat is the command-line client for the HipChat v1 API.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/cmd/hipchat/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command tree and returns the process exit status.
// An ExitError means the command already wrote whatever it had to say.
func run(args []string) int {
	err := commands.Root().Execute(args)
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	var toolErr *cli.ToolError
	if errors.As(err, &toolErr) {
		return toolErr.ExitCode()
	}
	return 1
}
