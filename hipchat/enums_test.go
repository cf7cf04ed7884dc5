// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"encoding/json"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := map[string]Color{
		"yellow":  ColorYellow,
		"RED":     ColorRed,
		"Green":   ColorGreen,
		"purple":  ColorPurple,
		" gray ":  ColorGray,
		"random":  ColorRandom,
		"":        ColorYellow,
		"magenta": ColorYellow,
	}
	for input, want := range tests {
		if got := ParseColor(input); got != want {
			t.Errorf("ParseColor(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseMessageFormat(t *testing.T) {
	tests := map[string]MessageFormat{
		"html":     FormatHTML,
		"TEXT":     FormatText,
		"":         FormatHTML,
		"markdown": FormatHTML,
	}
	for input, want := range tests {
		if got := ParseMessageFormat(input); got != want {
			t.Errorf("ParseMessageFormat(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseUserStatus(t *testing.T) {
	tests := map[string]UserStatus{
		"available": StatusAvailable,
		"Away":      StatusAway,
		"DND":       StatusDND,
		"offline":   StatusOffline,
		"":          StatusOffline,
		"busy":      StatusOffline,
	}
	for input, want := range tests {
		if got := ParseUserStatus(input); got != want {
			t.Errorf("ParseUserStatus(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseAccessLevel(t *testing.T) {
	tests := map[string]AccessLevel{
		"public":  AccessPublic,
		"PUBLIC":  AccessPublic,
		"private": AccessPrivate,
		"":        AccessPrivate,
		"secret":  AccessPrivate,
	}
	for input, want := range tests {
		if got := ParseAccessLevel(input); got != want {
			t.Errorf("ParseAccessLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestEnumZeroValuesAreDefaults(t *testing.T) {
	var color Color
	var format MessageFormat
	var status UserStatus
	var access AccessLevel

	if color.String() != "yellow" {
		t.Errorf("zero Color = %q, want yellow", color)
	}
	if format.String() != "html" {
		t.Errorf("zero MessageFormat = %q, want html", format)
	}
	if status.String() != "offline" {
		t.Errorf("zero UserStatus = %q, want offline", status)
	}
	if access.String() != "private" {
		t.Errorf("zero AccessLevel = %q, want private", access)
	}
}

func TestEnumOutOfRangeEncodesDefault(t *testing.T) {
	if got := Color(99).String(); got != "yellow" {
		t.Errorf("Color(99).String() = %q, want yellow", got)
	}
	if got := AccessLevel(-1).String(); got != "private" {
		t.Errorf("AccessLevel(-1).String() = %q, want private", got)
	}
}

func TestEnumText(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(map[string]any{"color": ColorPurple, "status": StatusDND})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != `{"color":"purple","status":"dnd"}` {
			t.Errorf("unexpected JSON: %s", data)
		}
	})

	t.Run("unmarshal valid", func(t *testing.T) {
		var format MessageFormat
		if err := format.UnmarshalText([]byte("Text")); err != nil {
			t.Fatalf("UnmarshalText failed: %v", err)
		}
		if format != FormatText {
			t.Errorf("format = %v, want text", format)
		}
	})

	t.Run("unmarshal unknown", func(t *testing.T) {
		color := ColorGreen
		if err := color.UnmarshalText([]byte("magenta")); err == nil {
			t.Fatal("expected error for unknown color")
		}
		if color != ColorGreen {
			t.Errorf("failed UnmarshalText modified the value: %v", color)
		}

		var access AccessLevel
		if err := access.UnmarshalText([]byte("hidden")); err == nil {
			t.Fatal("expected error for unknown access level")
		}
		var status UserStatus
		if err := status.UnmarshalText([]byte("busy")); err == nil {
			t.Fatal("expected error for unknown status")
		}
	})
}
