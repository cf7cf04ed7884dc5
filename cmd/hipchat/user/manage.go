// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/hipchat"
)

// --- create ---

type createParams struct {
	cli.Connection
	cli.JSONOutput
	PasswordSource
	Mention string `flag:"mention" desc:"@mention name without the @"`
	Title   string `flag:"title" desc:"job title"`
	Admin   bool   `flag:"admin" desc:"make the user a group admin"`
}

func createCommand(streams cli.Streams) *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a user",
		Description: `Create an account. Without a password option the server generates
one and emails it to the user.`,
		Usage: "hipchat user create <email> <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create an admin account with a password from a secret store",
				Command:     "pass show hipchat/ada | hipchat user create ada@example.com 'Ada Lovelace' --mention ada --admin --password-stdin",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("usage: hipchat user create <email> <name>")
			}
			email := args[0]
			name := strings.Join(args[1:], " ")
			if !strings.Contains(email, "@") {
				return cli.Validation("invalid email %q", email)
			}

			options := hipchat.UserOptions{
				MentionName:  strings.TrimPrefix(params.Mention, "@"),
				Title:        params.Title,
				IsGroupAdmin: params.Admin,
			}
			password, err := params.PasswordSource.read(streams)
			if err != nil {
				return err
			}
			if password != nil {
				defer password.Close()
				options.Password = password.String()
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			user, err := session.API.CreateUserAccount(ctx, email, name, options)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(streams.Out, user); done {
				return err
			}
			fmt.Fprintf(streams.Out, "created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}
}

// --- update ---

type updateParams struct {
	cli.Connection
	cli.JSONOutput
	PasswordSource
	Email   string `flag:"email" desc:"new email address"`
	Name    string `flag:"name" desc:"new display name"`
	Mention string `flag:"mention" desc:"new @mention name without the @"`
	Title   string `flag:"title" desc:"new job title"`
	Admin   string `flag:"admin" desc:"true or false to grant or revoke group admin"`
}

func updateCommand(streams cli.Streams) *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:    "update",
		Summary: "Change a user's details",
		Description: `Change the given fields of an account and leave the rest as they are.
The current account is fetched first so that the admin flag, which the
API always overwrites, is kept unless --admin is given.`,
		Usage: "hipchat user update <user> [flags]",
		Examples: []cli.Example{
			{
				Description: "Revoke admin rights",
				Command:     "hipchat user update @ada --admin false",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat user update <user> [flags]")
			}

			var admin *bool
			if params.Admin != "" {
				parsed, err := strconv.ParseBool(params.Admin)
				if err != nil {
					return cli.Validation("invalid --admin %q: expected true or false", params.Admin)
				}
				admin = &parsed
			}

			password, err := params.PasswordSource.read(streams)
			if err != nil {
				return err
			}
			if password != nil {
				defer password.Close()
			}
			if params.Email == "" && params.Name == "" && params.Mention == "" && params.Title == "" && admin == nil && password == nil {
				return cli.Validation("nothing to update: give at least one of --email, --name, --mention, --title, --admin, or a password option")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			userID, err := ResolveExact(ctx, session.API, args[0], false)
			if err != nil {
				return err
			}
			current, err := session.API.GetUser(ctx, userID)
			if err != nil {
				return cli.Classify(err)
			}

			// Only the changed fields are sent; is_group_admin always is.
			changes := hipchat.User{ID: current.ID, IsGroupAdmin: current.IsGroupAdmin}
			changes.Email = params.Email
			changes.Name = params.Name
			changes.MentionName = strings.TrimPrefix(params.Mention, "@")
			changes.Title = params.Title
			if admin != nil {
				changes.IsGroupAdmin = *admin
			}
			if password != nil {
				changes.Password = password.String()
			}

			updated, err := session.API.UpdateUser(ctx, changes)
			if err != nil {
				return cli.Classify(err)
			}

			if done, err := params.EmitJSON(streams.Out, updated); done {
				return err
			}
			fmt.Fprintf(streams.Out, "updated user %s\n", updated.ID)
			return nil
		},
	}
}

// --- delete / undelete ---

type deleteParams struct {
	cli.Connection
}

func deleteCommand(streams cli.Streams) *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a user",
		Description: `Delete an account. Deleted accounts can be restored with
"hipchat user undelete". The <user> argument must be a user id, email,
@mention, or full display name; partial names are rejected with a list
of candidates.`,
		Usage: "hipchat user delete <user> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat user delete <user>")
			}

			session, err := params.Connect()
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, cancel := cli.CommandContext()
			defer cancel()

			userID, err := ResolveExact(ctx, session.API, args[0], false)
			if err != nil {
				return err
			}
			if _, err := session.API.DeleteUser(ctx, userID); err != nil {
				return cli.Classify(err)
			}
			fmt.Fprintf(streams.Out, "deleted user %d\n", userID)
			return nil
		},
	}
}

type undeleteParams struct {
	cli.Connection
}

func undeleteCommand(streams cli.Streams) *cli.Command {
	var params undeleteParams

	return &cli.Command{
		Name:    "undelete",
		Summary: "Restore a deleted user",
		Usage:   "hipchat user undelete <user> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("undelete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: hipchat user undelete <user>")
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
			if _, err := session.API.UndeleteUser(ctx, userID); err != nil {
				return cli.Classify(err)
			}
			fmt.Fprintf(streams.Out, "restored user %d\n", userID)
			return nil
		},
	}
}
