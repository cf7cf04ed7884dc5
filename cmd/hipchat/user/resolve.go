// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"strconv"
	"strings"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/hipchat"
	"github.com/bureau-foundation/hipchat/lib/fuzzy"
)

// maxSuggestions caps the candidate names listed when an exact lookup
// fails.
const maxSuggestions = 3

// Resolve turns a <user> argument into a user id. Numbers are ids.
// Otherwise the user list (deleted users included when includeDeleted
// is set) is searched for an exact email or @mention, then fuzzily by
// display name.
func Resolve(ctx context.Context, api hipchat.API, arg string, includeDeleted bool) (int, error) {
	return resolve(ctx, api, arg, includeDeleted, false)
}

// ResolveExact is Resolve without the partial match: a name must equal
// the user's display name, ignoring case. Emails and @mentions match as
// in Resolve. Commands that delete or overwrite a user use it.
func ResolveExact(ctx context.Context, api hipchat.API, arg string, includeDeleted bool) (int, error) {
	return resolve(ctx, api, arg, includeDeleted, true)
}

func resolve(ctx context.Context, api hipchat.API, arg string, includeDeleted, exact bool) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return 0, cli.Validation("invalid user id %d: expected a positive number", id)
		}
		return id, nil
	}

	options := hipchat.ListUsersOptions{}
	if includeDeleted {
		options.IncludeDeleted = hipchat.Ptr(true)
	}
	users, err := api.ListUsers(ctx, options)
	if err != nil {
		return 0, cli.Classify(err)
	}

	mention := strings.TrimPrefix(arg, "@")
	for _, user := range users {
		if strings.EqualFold(user.Email, arg) || (user.MentionName != "" && strings.EqualFold(user.MentionName, mention)) {
			return userID(user)
		}
	}

	names := make([]string, len(users))
	for index, user := range users {
		names[index] = user.Name
	}

	if exact {
		trimmed := strings.TrimSpace(arg)
		for index, name := range names {
			if strings.EqualFold(name, trimmed) {
				return userID(users[index])
			}
		}
		return 0, notFoundWithSuggestions(names, arg)
	}

	index, ok := fuzzy.Best(names, arg)
	if !ok {
		return 0, cli.NotFound("no user matches %q", arg)
	}
	return userID(users[index])
}

func notFoundWithSuggestions(names []string, arg string) error {
	ranked := fuzzy.Rank(names, arg)
	if len(ranked) == 0 {
		return cli.NotFound("no user named %q", arg)
	}
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	quoted := make([]string, len(ranked))
	for index, candidate := range ranked {
		quoted[index] = strconv.Quote(candidate.Text)
	}
	return cli.NotFound("no user named %q (did you mean %s? use the full name, email, @mention, or user id)",
		arg, strings.Join(quoted, ", "))
}

func userID(user hipchat.User) (int, error) {
	id, err := strconv.Atoi(user.ID)
	if err != nil {
		return 0, cli.Internal("server returned non-numeric user id %q for %s", user.ID, user.Name)
	}
	return id, nil
}
