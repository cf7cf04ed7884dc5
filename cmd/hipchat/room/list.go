// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/hipchat"
)

// topicWidth bounds the topic column in the room table.
const topicWidth = 48

// --- list ---

type listParams struct {
	cli.Connection
	cli.JSONOutput
	Archived bool `flag:"archived" desc:"include archived rooms"`
}

func listCommand(streams cli.Streams) *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List rooms",
		Description: `List the rooms in the group, sorted by name. Archived rooms are
hidden unless --archived is given.`,
		Usage: "hipchat room list [flags]",
		Examples: []cli.Example{
			{
				Description: "List rooms as a table",
				Command:     "hipchat room list",
			},
			{
				Description: "Feed room ids to another tool",
				Command:     "hipchat room list --json | jq '.[].ID'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			rooms, err := session.API.ListRooms(ctx)
			if err != nil {
				return cli.Classify(err)
			}

			visible := rooms[:0]
			for _, room := range rooms {
				if params.Archived || !room.IsArchived {
					visible = append(visible, room)
				}
			}
			sort.SliceStable(visible, func(i, j int) bool {
				return strings.ToLower(visible[i].Name) < strings.ToLower(visible[j].Name)
			})

			if done, err := params.EmitJSON(streams.Out, visible); done {
				return err
			}
			if len(visible) == 0 {
				fmt.Fprintln(streams.Out, "no rooms")
				return nil
			}

			rows := make([][]string, 0, len(visible))
			for _, room := range visible {
				rows = append(rows, []string{
					strconv.Itoa(room.ID),
					room.Name,
					room.AccessLevel.String(),
					formatTime(room.LastActive),
					cli.Truncate(room.Topic, topicWidth),
				})
			}
			return cli.WriteTable(streams.Out, []string{"ID", "NAME", "ACCESS", "LAST ACTIVE", "TOPIC"}, rows)
		},
	}
}

// --- show ---

type showParams struct {
	cli.Connection
	cli.JSONOutput
	Quiet bool `flag:"quiet,q" desc:"print nothing; exit 1 if the room does not exist"`
}

func showCommand(streams cli.Streams) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show room details and participants",
		Description: `Show a room's settings and the users currently in it.

With --quiet nothing is printed and the exit status reports whether the
room exists, for use in shell conditionals.`,
		Usage: "hipchat room show <room> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show a room by name",
				Command:     "hipchat room show Ops",
			},
			{
				Description: "Create a room only if it is missing",
				Command:     "hipchat room show 42 --quiet || hipchat room create Ops --owner 1",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat room show <room>")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			roomID, err := Resolve(ctx, session.API, args[0])
			if err != nil {
				if params.Quiet && cli.IsNotFound(err) {
					return &cli.ExitError{Code: 1}
				}
				return err
			}

			room, err := session.API.GetRoom(ctx, roomID)
			if err != nil {
				if params.Quiet && cli.IsNotFound(err) {
					return &cli.ExitError{Code: 1}
				}
				return cli.Classify(err)
			}
			if params.Quiet {
				return nil
			}

			if done, err := params.EmitJSON(streams.Out, room); done {
				return err
			}
			return writeRoom(streams, room)
		},
	}
}

func writeRoom(streams cli.Streams, room *hipchat.Room) error {
	fields := [][2]string{
		{"ID", strconv.Itoa(room.ID)},
		{"Name", room.Name},
		{"Topic", room.Topic},
		{"Access", room.AccessLevel.String()},
		{"Owner", strconv.Itoa(room.OwnerID)},
		{"Archived", strconv.FormatBool(room.IsArchived)},
		{"Created", formatTime(room.Created)},
		{"Last active", formatTime(room.LastActive)},
	}
	if room.AllowsGuests {
		fields = append(fields, [2]string{"Guest URL", room.GuestAccessURL})
	}
	if room.XMPPJabberID != "" {
		fields = append(fields, [2]string{"XMPP", room.XMPPJabberID})
	}
	for _, field := range fields {
		fmt.Fprintf(streams.Out, "%-12s %s\n", field[0]+":", field[1])
	}

	if len(room.Participants) == 0 {
		return nil
	}
	fmt.Fprintln(streams.Out)
	rows := make([][]string, 0, len(room.Participants))
	for _, participant := range room.Participants {
		rows = append(rows, []string{participant.ID, participant.Name, participant.MentionName, participant.Status.String()})
	}
	return cli.WriteTable(streams.Out, []string{"USER", "NAME", "MENTION", "STATUS"}, rows)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
