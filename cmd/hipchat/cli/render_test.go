// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteTable_PlainOutput(t *testing.T) {
	var output bytes.Buffer
	err := WriteTable(&output, []string{"ID", "NAME"}, [][]string{
		{"7", "Ops"},
		{"12", "Engineering"},
	})
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	rendered := output.String()
	for _, want := range []string{"ID", "NAME", "Ops", "Engineering", "╭", "╯"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
	if strings.Contains(rendered, "\x1b[") {
		t.Errorf("non-terminal output must not contain escape sequences:\n%q", rendered)
	}
	if lines := strings.Count(rendered, "\n"); lines < 5 {
		t.Errorf("expected border, header, separator and two rows, got %d lines:\n%s", lines, rendered)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this topic is too long", 10, "this topi…"},
		{"anything", 0, "anything"},
	}
	for _, test := range tests {
		if got := Truncate(test.input, test.width); got != test.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", test.input, test.width, got, test.want)
		}
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("room", "42")
	if err != nil || id != 42 {
		t.Fatalf("ParseID(42) = (%d, %v)", id, err)
	}

	for _, bad := range []string{"", "ops", "-3", "0", "4.5"} {
		_, err := ParseID("room", bad)
		var toolErr *ToolError
		if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
			t.Errorf("ParseID(%q) error = %v, want validation error", bad, err)
		}
	}
}
