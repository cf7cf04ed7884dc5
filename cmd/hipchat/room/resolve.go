// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package room

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

// Resolve turns a <room> argument into a room id. A positive number is
// taken as an id without a request; anything else is matched against
// the names from rooms/list, falling back to the closest partial match.
func Resolve(ctx context.Context, api hipchat.API, arg string) (int, error) {
	return resolve(ctx, api, arg, false)
}

// ResolveExact is Resolve without the partial match: a name must equal
// the room's name, ignoring case. Commands that destroy or overwrite
// state use it so a short argument cannot land on the wrong room.
func ResolveExact(ctx context.Context, api hipchat.API, arg string) (int, error) {
	return resolve(ctx, api, arg, true)
}

func resolve(ctx context.Context, api hipchat.API, arg string, exact bool) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return 0, cli.Validation("invalid room id %d: expected a positive number", id)
		}
		return id, nil
	}

	rooms, err := api.ListRooms(ctx)
	if err != nil {
		return 0, cli.Classify(err)
	}

	names := make([]string, len(rooms))
	for index, room := range rooms {
		names[index] = room.Name
	}

	if exact {
		trimmed := strings.TrimSpace(arg)
		for index, name := range names {
			if strings.EqualFold(name, trimmed) {
				return rooms[index].ID, nil
			}
		}
		return 0, notFoundWithSuggestions(names, arg)
	}

	index, ok := fuzzy.Best(names, arg)
	if !ok {
		return 0, cli.NotFound("no room matches %q", arg)
	}
	return rooms[index].ID, nil
}

func notFoundWithSuggestions(names []string, arg string) error {
	ranked := fuzzy.Rank(names, arg)
	if len(ranked) == 0 {
		return cli.NotFound("no room named %q", arg)
	}
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	quoted := make([]string, len(ranked))
	for index, candidate := range ranked {
		quoted[index] = strconv.Quote(candidate.Text)
	}
	return cli.NotFound("no room named %q (did you mean %s? use the full name or the room id)",
		arg, strings.Join(quoted, ", "))
}
