// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"
)

// Streams are the input and output a command reads and writes. Tests
// substitute buffers; the binary uses [StandardStreams].
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// StandardStreams returns stdin and stdout.
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout}
}
