// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/hipchat"
)

// --- list ---

type listParams struct {
	cli.Connection
	cli.JSONOutput
	IncludeDeleted bool `flag:"include-deleted" desc:"include deleted accounts"`
}

func listCommand(streams cli.Streams) *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List users",
		Usage:   "hipchat user list [flags]",
		Examples: []cli.Example{
			{
				Description: "Find accounts that were removed",
				Command:     "hipchat user list --include-deleted --json | jq '.[] | select(.IsDeleted)'",
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

			options := hipchat.ListUsersOptions{}
			if params.IncludeDeleted {
				options.IncludeDeleted = hipchat.Ptr(true)
			}
			users, err := session.API.ListUsers(ctx, options)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(streams.Out, users); done {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(streams.Out, "no users")
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, user := range users {
				rows = append(rows, []string{
					user.ID,
					user.Name,
					mention(user),
					user.Email,
					userState(user),
				})
			}
			return cli.WriteTable(streams.Out, []string{"ID", "NAME", "MENTION", "EMAIL", "STATUS"}, rows)
		},
	}
}

// --- show ---

type showParams struct {
	cli.Connection
	cli.JSONOutput
}

func showCommand(streams cli.Streams) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a user's details",
		Usage:   "hipchat user show <user> [flags]",
		Examples: []cli.Example{
			{
				Description: "Look up a user by mention name",
				Command:     "hipchat user show @ada",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat user show <user>")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			userID, err := Resolve(ctx, session.API, args[0], true)
			if err != nil {
				return err
			}
			user, err := session.API.GetUser(ctx, userID)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(streams.Out, user); done {
				return err
			}
			writeUser(streams, user)
			return nil
		},
	}
}

func writeUser(streams cli.Streams, user *hipchat.User) {
	fields := [][2]string{
		{"ID", user.ID},
		{"Name", user.Name},
		{"Mention", mention(*user)},
		{"Email", user.Email},
		{"Title", user.Title},
		{"Status", userState(*user)},
		{"Admin", strconv.FormatBool(user.IsGroupAdmin)},
		{"Created", formatTime(user.Created)},
		{"Last active", formatTime(user.LastActive)},
	}
	if user.StatusMessage != "" {
		fields = append(fields, [2]string{"Message", user.StatusMessage})
	}
	if user.AvatarURL != "" {
		fields = append(fields, [2]string{"Avatar", user.AvatarURL})
	}
	for _, field := range fields {
		fmt.Fprintf(streams.Out, "%-12s %s\n", field[0]+":", field[1])
	}
}

func mention(user hipchat.User) string {
	if user.MentionName == "" {
		return ""
	}
	return "@" + user.MentionName
}

func userState(user hipchat.User) string {
	if user.IsDeleted {
		return "deleted"
	}
	return user.Status.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
