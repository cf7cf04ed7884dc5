// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete hipchat CLI command tree.
package commands

import (
	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	roomcmd "github.com/bureau-foundation/hipchat/cmd/hipchat/room"
	usercmd "github.com/bureau-foundation/hipchat/cmd/hipchat/user"
)

// Root builds the command tree writing to stdout.
func Root() *cli.Command {
	return NewRoot(cli.StandardStreams())
}

// NewRoot builds the command tree over streams.
func NewRoot(streams cli.Streams) *cli.Command {
	return &cli.Command{
		Name: "hipchat",
		Description: `hipchat: command-line client for the HipChat v1 API.

Send messages, read room history, and manage rooms and users. The API
token comes from --token-file, --token, or auth.token_file in the file
named by --config or $HIPCHAT_CONFIG.`,
		Subcommands: []*cli.Command{
			sendCommand(streams),
			roomcmd.Command(streams),
			usercmd.Command(streams),
			versionCommand(streams),
		},
		Examples: []cli.Example{
			{
				Description: "Post a build result",
				Command:     "hipchat send Builds 'nightly *passed*' --markdown --color green",
			},
			{
				Description: "Read today's history in a pager",
				Command:     "hipchat room history Ops --pager",
			},
			{
				Description: "List users, including deleted ones, as JSON",
				Command:     "hipchat user list --include-deleted --json",
			},
			{
				Description: "Use an age-encrypted token",
				Command:     "hipchat room list --config ~/.config/hipchat/hipchat.yaml",
			},
		},
	}
}
