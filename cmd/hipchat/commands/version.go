// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/lib/version"
)

type versionParams struct {
	cli.JSONOutput
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildTime string `json:"build_time"`
	Go        string `json:"go"`
	Platform  string `json:"platform"`
	UserAgent string `json:"user_agent"`
}

func versionCommand(streams cli.Streams) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			info := versionInfo{
				Version:   version.Version,
				Commit:    version.GitCommit,
				Dirty:     version.GitDirty == "true",
				BuildTime: version.BuildTime,
				Go:        runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
				UserAgent: version.UserAgent(),
			}
			if done, err := params.EmitJSON(streams.Out, info); done {
				return err
			}
			_, err := fmt.Fprintf(streams.Out, "hipchat %s\n", version.Full())
			return err
		},
	}
}
