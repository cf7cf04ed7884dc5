// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// NewRenderer returns a lipgloss renderer for w. Terminals get 256
// colors; pipes and files get plain text so output stays grep-able.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = termenv.ANSI256
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	// lipgloss re-detects the profile unless it is set explicitly.
	renderer.SetColorProfile(profile)
	return renderer
}

// WriteTable renders rows under headers as a bordered table.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	renderer := NewRenderer(w)
	headerStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle := renderer.NewStyle().Padding(0, 1)

	rendered := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(renderer.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, rendered.Render())
	return err
}

// Truncate shortens s to at most width display cells, ending in an
// ellipsis when it cuts. ANSI sequences in s are preserved.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// ParseID parses a positive numeric id argument.
func ParseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, Validation("invalid %s id %q: expected a positive number", kind, arg)
	}
	return id, nil
}
