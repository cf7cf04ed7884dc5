// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadFromPath reads a secret from a file path, or from stdin if path is
// "-". Leading and trailing whitespace is trimmed. The caller must close
// the returned buffer.
func ReadFromPath(path string) (*Buffer, error) {
	if path == "-" {
		return ReadLine(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromData(data)
}

// FromData trims whitespace from data, moves the remainder into a Buffer,
// and zeros data. Used for secrets that arrive through another decoder
// (for example an age-decrypted token file).
func FromData(data []byte) (*Buffer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// ReadLine reads the first line of reader into a Buffer, with
// whitespace trimmed. The scanner's copy of the line is zeroed.
func ReadLine(reader io.Reader) (*Buffer, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading secret: %w", err)
		}
		return nil, fmt.Errorf("input is empty")
	}
	return FromData(scanner.Bytes())
}
