// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package user implements the "hipchat user" command group for group
// administrators: listing, inspecting, creating, updating, deleting,
// and restoring accounts.
package user

import "github.com/bureau-foundation/hipchat/cmd/hipchat/cli"

// Command returns the "user" subcommand group.
func Command(streams cli.Streams) *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "User management commands",
		Description: `Manage the accounts in a HipChat group. These commands need an admin
token.

Commands that take a <user> argument accept a numeric user id, an email
address, an @mention name, or a display name. Names are matched
case-insensitively. show and undelete accept a partial name and pick the
closest match; update and delete require the full name.`,
		Subcommands: []*cli.Command{
			listCommand(streams),
			showCommand(streams),
			createCommand(streams),
			updateCommand(streams),
			deleteCommand(streams),
			undeleteCommand(streams),
		},
	}
}
