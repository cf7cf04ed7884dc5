// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/hipchat"
)

// --- create ---

type createParams struct {
	cli.Connection
	cli.JSONOutput
	Owner  int                 `flag:"owner" desc:"user id of the room owner (required)"`
	Access hipchat.AccessLevel `flag:"access" desc:"public or private" default:"public"`
	Guests bool                `flag:"guests" desc:"enable the guest access URL"`
	Topic  string              `flag:"topic" desc:"initial room topic"`
}

func createCommand(streams cli.Streams) *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a room",
		Usage:   "hipchat room create <name> --owner <user-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a private incident room",
				Command:     "hipchat room create 'Incident 2041' --owner 5 --access private --topic 'db failover'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return cli.Validation("usage: hipchat room create <name> --owner <user-id>")
			}
			if params.Owner <= 0 {
				return cli.Validation("--owner is required")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			room, err := session.API.CreateNamedRoom(ctx, args[0], params.Owner, hipchat.RoomOptions{
				AccessLevel: params.Access,
				AllowGuests: params.Guests,
				Topic:       params.Topic,
			})
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(streams.Out, room); done {
				return err
			}
			fmt.Fprintf(streams.Out, "created room %d (%s)\n", room.ID, room.Name)
			return nil
		},
	}
}

// --- delete ---

type deleteParams struct {
	cli.Connection
}

func deleteCommand(streams cli.Streams) *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a room",
		Description: `Delete a room and its history. This cannot be undone. The
<room> argument must be the numeric id or the room's full name; partial
names are rejected with a list of candidates.`,
		Usage: "hipchat room delete <room> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat room delete <room>")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			roomID, err := ResolveExact(ctx, session.API, args[0])
			if err != nil {
				return err
			}
			if _, err := session.API.DeleteRoom(ctx, roomID); err != nil {
				return cli.Classify(err)
			}
			fmt.Fprintf(streams.Out, "deleted room %d\n", roomID)
			return nil
		},
	}
}

// --- topic ---

type topicParams struct {
	cli.Connection
	From string `flag:"from" desc:"name shown as having changed the topic"`
}

func topicCommand(streams cli.Streams) *cli.Command {
	var params topicParams

	return &cli.Command{
		Name:    "topic",
		Summary: "Change a room's topic",
		Usage:   "hipchat room topic <room> <topic> [flags]",
		Examples: []cli.Example{
			{
				Description: "Announce a deploy freeze",
				Command:     "hipchat room topic Ops 'Deploy freeze until Monday' --from Release",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("topic", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("usage: hipchat room topic <room> <topic>")
			}
			topic := strings.Join(args[1:], " ")

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			roomID, err := ResolveExact(ctx, session.API, args[0])
			if err != nil {
				return err
			}
			if _, err := session.API.ChangeTopic(ctx, roomID, topic, params.From); err != nil {
				return cli.Classify(err)
			}
			fmt.Fprintf(streams.Out, "topic of room %d set to %q\n", roomID, topic)
			return nil
		},
	}
}
