// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the hipchat binary.
//
// A [Command] tree dispatches on the first positional argument, parses
// pflag flags, and prints structured help with typo suggestions for
// unknown commands and flags. Parameter structs declare their flags
// with struct tags and are bound by [BindFlags]; enum types that
// implement encoding.TextUnmarshaler bind as validated string flags.
//
// [Connection] holds the flags shared by every command that talks to
// the API (--config, --base-url, --token, --token-file, --timeout) and
// builds a hipchat.Client from them. [JSONOutput] adds --json.
//
// Errors returned by commands are classified into [ToolError]
// categories; [Classify] maps hipchat API failures onto them.
package cli
