// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/hipchat"
)

type testParams struct {
	JSONOutput
	From    string                `flag:"from,f" desc:"sender name" default:"hipchat"`
	Notify  bool                  `flag:"notify" desc:"notify members"`
	Owner   int                   `flag:"owner" desc:"owner user id" default:"1"`
	Wait    time.Duration         `flag:"wait" desc:"wait" default:"2s"`
	Tags    []string              `flag:"tag" desc:"tags"`
	Color   hipchat.Color         `flag:"color" desc:"message color" default:"green"`
	Format  hipchat.MessageFormat `flag:"format" desc:"message format"`
	Ignored string
}

func TestBindFlags_Defaults(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("test", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if params.From != "hipchat" || params.Owner != 1 || params.Wait != 2*time.Second {
		t.Errorf("defaults not applied: %+v", params)
	}
	if params.Color != hipchat.ColorGreen {
		t.Errorf("Color default = %v, want green", params.Color)
	}
	if params.Format != hipchat.FormatHTML {
		t.Errorf("Format default = %v, want html", params.Format)
	}
}

func TestBindFlags_ParsesValues(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("test", &params)
	err := flagSet.Parse([]string{
		"-f", "Deploy Bot",
		"--notify",
		"--owner", "42",
		"--tag", "a,b",
		"--color", "RED",
		"--format", "text",
		"--json",
		"positional",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if params.From != "Deploy Bot" || !params.Notify || params.Owner != 42 {
		t.Errorf("unexpected params: %+v", params)
	}
	if len(params.Tags) != 2 {
		t.Errorf("Tags = %v", params.Tags)
	}
	if params.Color != hipchat.ColorRed || params.Format != hipchat.FormatText {
		t.Errorf("enums: color=%v format=%v", params.Color, params.Format)
	}
	if !params.OutputJSON {
		t.Error("--json from embedded JSONOutput not bound")
	}
	if args := flagSet.Args(); len(args) != 1 || args[0] != "positional" {
		t.Errorf("positional args = %v", args)
	}
	if flagSet.Lookup("Ignored") != nil || flagSet.Lookup("ignored") != nil {
		t.Error("fields without a flag tag must be skipped")
	}
}

func TestBindFlags_RejectsUnknownEnum(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("test", &params)
	flagSet.SetOutput(io.Discard)
	if err := flagSet.Parse([]string{"--color", "magenta"}); err == nil {
		t.Fatal("expected error for unknown color")
	}
}

func TestBindFlags_FlagBinder(t *testing.T) {
	var params struct {
		Connection
		JSONOutput
	}
	flagSet := FlagsFromParams("test", &params)
	for _, name := range []string{"config", "base-url", "token", "token-file", "timeout", "verbose", "json"} {
		if flagSet.Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if err := flagSet.Parse([]string{"--base-url", "http://localhost:8080", "--timeout", "5s"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if params.BaseURL != "http://localhost:8080" || params.Timeout != 5*time.Second {
		t.Errorf("connection flags not bound: %+v", params.Connection)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	if err := BindFlags(testParams{}, flagSet); err == nil {
		t.Error("expected error for non-pointer params")
	}

	notStruct := 5
	if err := BindFlags(&notStruct, flagSet); err == nil {
		t.Error("expected error for pointer to non-struct")
	}

	var badDefault struct {
		Count int `flag:"count" default:"many"`
	}
	if err := BindFlags(&badDefault, flagSet); err == nil {
		t.Error("expected error for unparseable default")
	}

	var unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	if err := BindFlags(&unsupported, pflag.NewFlagSet("other", pflag.ContinueOnError)); err == nil {
		t.Error("expected error for unsupported field type")
	}
}

func TestFlagsFromParams_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid params")
		}
	}()
	FlagsFromParams("test", "not a struct")
}
