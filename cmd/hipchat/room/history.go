// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/cmd/hipchat/pager"
	"github.com/bureau-foundation/hipchat/hipchat"
)

type historyParams struct {
	cli.Connection
	cli.JSONOutput
	Date  string `flag:"date,d" desc:"calendar day in UTC (YYYY-MM-DD); default is the most recent messages"`
	Pager bool   `flag:"pager" desc:"open the history in a scrollable view when stdout is a terminal"`
}

func historyCommand(streams cli.Streams) *cli.Command {
	var params historyParams

	return &cli.Command{
		Name:    "history",
		Summary: "Show messages posted to a room",
		Description: `Print a room's messages, oldest first. Without --date the most recent
messages are shown; with --date, every message from that UTC day.`,
		Usage: "hipchat room history <room> [flags]",
		Examples: []cli.Example{
			{
				Description: "Read what happened in Ops during an incident",
				Command:     "hipchat room history Ops --date 2026-03-14 --pager",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("history", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat room history <room>")
			}

			var date time.Time
			if params.Date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", params.Date, time.UTC)
				if err != nil {
					return cli.Validation("invalid --date %q: expected YYYY-MM-DD", params.Date)
				}
				date = parsed
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
				return err
			}
			messages, err := session.API.RoomHistory(ctx, roomID, date)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(streams.Out, messages); done {
				return err
			}

			if params.Pager && cli.IsTerminal(streams.Out) {
				var content strings.Builder
				writeHistory(&content, messages)
				return pager.Run(fmt.Sprintf("room %d history", roomID), content.String())
			}
			writeHistory(streams.Out, messages)
			return nil
		},
	}
}

func writeHistory(w io.Writer, messages []hipchat.Message) {
	if len(messages) == 0 {
		fmt.Fprintln(w, "no messages")
		return
	}
	for _, message := range messages {
		sender := "unknown"
		if message.SendingUser != nil && message.SendingUser.Name != "" {
			sender = message.SendingUser.Name
		}
		fmt.Fprintf(w, "%s  %s: %s\n", formatTime(message.TimeSent), sender, message.Text)
		if message.File != nil {
			fmt.Fprintf(w, "%s  attached %s (%d bytes) %s\n",
				strings.Repeat(" ", len("2006-01-02 15:04")), message.File.Name, message.File.Size, message.File.URL)
		}
	}
}
