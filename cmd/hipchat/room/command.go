// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package room implements the "hipchat room" command group: listing,
// inspecting, creating, and deleting rooms, reading history, and
// changing topics.
package room

import "github.com/bureau-foundation/hipchat/cmd/hipchat/cli"

// Command returns the "room" subcommand group.
func Command(streams cli.Streams) *cli.Command {
	return &cli.Command{
		Name:    "room",
		Summary: "Room management commands",
		Description: `List, inspect, create, and delete HipChat rooms.

Commands that take a <room> argument accept either a numeric room id or
a room name. Names are matched case-insensitively. Read-only commands
and send accept a partial name and pick the closest match from the room
list; delete and topic require the full name.`,
		Subcommands: []*cli.Command{
			listCommand(streams),
			showCommand(streams),
			createCommand(streams),
			deleteCommand(streams),
			historyCommand(streams),
			topicCommand(streams),
		},
	}
}
