// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	roomcmd "github.com/bureau-foundation/hipchat/cmd/hipchat/room"
	"github.com/bureau-foundation/hipchat/hipchat"
	"github.com/bureau-foundation/hipchat/lib/config"
	"github.com/bureau-foundation/hipchat/lib/richtext"
)

// maxFromLength is the longest sender name the API accepts.
const maxFromLength = 15

// maxMessageLength is the longest message body the API accepts.
const maxMessageLength = 10000

type sendParams struct {
	cli.Connection
	From     string `flag:"from,f" desc:"sender name shown in the room (default message.from from config)"`
	Color    string `flag:"color,c" desc:"yellow, red, green, purple, gray, or random (default message.color from config)"`
	Format   string `flag:"format" desc:"html or text (default message.format from config)"`
	Notify   bool   `flag:"notify,n" desc:"notify room members"`
	Markdown bool   `flag:"markdown,m" desc:"render the message from Markdown to HTML"`
}

func sendCommand(streams cli.Streams) *cli.Command {
	var params sendParams

	return &cli.Command{
		Name:    "send",
		Summary: "Send a message to a room",
		Description: `Post a message to a room. The message is the remaining arguments
joined by spaces, or stdin when the message is "-".

Sender name, color, and format default to the message section of the
config file. --markdown renders CommonMark with GitHub extensions to the
HTML subset HipChat displays and implies --format html.`,
		Usage: "hipchat send <room> <message...> [flags]",
		Examples: []cli.Example{
			{
				Description: "Page the on-call room",
				Command:     "hipchat send Ops 'db-2 disk full' --color red --notify",
			},
			{
				Description: "Post a generated report",
				Command:     "render-report | hipchat send Reports - --markdown --from Reports",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("send", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("usage: hipchat send <room> <message...>")
			}

			text := strings.Join(args[1:], " ")
			if text == "-" {
				data, err := io.ReadAll(streams.In)
				if err != nil {
					return cli.Internal("reading message from stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\n")
			}
			if strings.TrimSpace(text) == "" {
				return cli.Validation("message is empty")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			from, options, err := params.resolve(session.Config.Message)
			if err != nil {
				return err
			}
			if params.Markdown {
				rendered, err := richtext.ToHTML(text)
				if err != nil {
					return cli.Validation("rendering markdown: %w", err)
				}
				text = rendered
				options.Format = hipchat.FormatHTML
			}
			if length := utf8.RuneCountInString(text); length > maxMessageLength {
				return cli.Validation("message is %d characters; the limit is %d", length, maxMessageLength)
			}

			ctx, cancel := cli.CommandContext()
			defer cancel()

			roomID, err := roomcmd.Resolve(ctx, session.API, args[0])
			if err != nil {
				return err
			}
			if _, err := session.API.Send(ctx, roomID, from, text, options); err != nil {
				return cli.Classify(err)
			}
			session.Logger.Debug("message sent", "room_id", roomID, "length", len(text))
			return nil
		},
	}
}

// resolve merges the flags over the config defaults.
func (p *sendParams) resolve(defaults config.MessageConfig) (string, hipchat.SendOptions, error) {
	options := hipchat.SendOptions{Notify: p.Notify}

	from := firstNonEmpty(p.From, defaults.From)
	if from == "" {
		return "", options, cli.Validation("no sender name: use --from or set message.from in the config file")
	}
	if utf8.RuneCountInString(from) > maxFromLength {
		return "", options, cli.Validation("sender name %q is longer than %d characters", from, maxFromLength)
	}

	if color := firstNonEmpty(p.Color, defaults.Color); color != "" {
		if err := options.Color.UnmarshalText([]byte(color)); err != nil {
			return "", options, cli.Validation("invalid color: %w", err)
		}
	}
	if format := firstNonEmpty(p.Format, defaults.Format); format != "" {
		if err := options.Format.UnmarshalText([]byte(format)); err != nil {
			return "", options, cli.Validation("invalid format: %w", err)
		}
	}
	return from, options, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
