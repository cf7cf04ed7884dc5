// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"fmt"
	"strings"
)

// enumTable maps an int-backed enum to its lower-case wire names.
// Lookups are case-insensitive; unknown names resolve to fallback.
type enumTable[E ~int] struct {
	names    []string
	byName   map[string]E
	fallback E
}

func newEnumTable[E ~int](fallback E, names ...string) enumTable[E] {
	byName := make(map[string]E, len(names))
	for index, name := range names {
		byName[name] = E(index)
	}
	return enumTable[E]{names: names, byName: byName, fallback: fallback}
}

// name returns the wire name for value. Out-of-range values encode as
// the fallback.
func (t enumTable[E]) name(value E) string {
	if value < 0 || int(value) >= len(t.names) {
		return t.names[t.fallback]
	}
	return t.names[value]
}

// parse resolves a wire name. Empty or unrecognized text returns the
// fallback.
func (t enumTable[E]) parse(text string) E {
	if value, ok := t.lookup(text); ok {
		return value
	}
	return t.fallback
}

func (t enumTable[E]) lookup(text string) (E, bool) {
	value, ok := t.byName[strings.ToLower(strings.TrimSpace(text))]
	return value, ok
}

// Color is the background color of a posted message.
type Color int

const (
	// ColorYellow is the default message color.
	ColorYellow Color = iota
	ColorRed
	ColorGreen
	ColorPurple
	ColorGray
	// ColorRandom asks the server to pick a color.
	ColorRandom
)

var colors = newEnumTable(ColorYellow, "yellow", "red", "green", "purple", "gray", "random")

// ParseColor resolves a color name case-insensitively. Unknown names
// return ColorYellow.
func ParseColor(name string) Color { return colors.parse(name) }

func (c Color) String() string { return colors.name(c) }

// MarshalText encodes the color as its lower-case name.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a color name. Unknown names are an error, so
// that command-line input is checked strictly; wire decoding goes
// through ParseColor instead.
func (c *Color) UnmarshalText(text []byte) error {
	value, ok := colors.lookup(string(text))
	if !ok {
		return fmt.Errorf("unknown color %q (valid: %s)", text, strings.Join(colors.names, ", "))
	}
	*c = value
	return nil
}

// MessageFormat controls how the server renders message text.
type MessageFormat int

const (
	// FormatHTML renders a restricted HTML subset. This is the default.
	FormatHTML MessageFormat = iota
	// FormatText renders plain text, expanding @mentions and emoticons.
	FormatText
)

var messageFormats = newEnumTable(FormatHTML, "html", "text")

// ParseMessageFormat resolves a format name case-insensitively. Unknown
// names return FormatHTML.
func ParseMessageFormat(name string) MessageFormat { return messageFormats.parse(name) }

func (f MessageFormat) String() string { return messageFormats.name(f) }

// MarshalText encodes the format as its lower-case name.
func (f MessageFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes a format name, rejecting unknown names.
func (f *MessageFormat) UnmarshalText(text []byte) error {
	value, ok := messageFormats.lookup(string(text))
	if !ok {
		return fmt.Errorf("unknown message format %q (valid: %s)", text, strings.Join(messageFormats.names, ", "))
	}
	*f = value
	return nil
}

// UserStatus is a user's presence.
type UserStatus int

const (
	// StatusOffline is the default when the server reports no status.
	StatusOffline UserStatus = iota
	StatusAvailable
	StatusAway
	StatusDND
)

var userStatuses = newEnumTable(StatusOffline, "offline", "available", "away", "dnd")

// ParseUserStatus resolves a status name case-insensitively. Unknown
// names return StatusOffline.
func ParseUserStatus(name string) UserStatus { return userStatuses.parse(name) }

func (s UserStatus) String() string { return userStatuses.name(s) }

// MarshalText encodes the status as its lower-case name.
func (s UserStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status name, rejecting unknown names.
func (s *UserStatus) UnmarshalText(text []byte) error {
	value, ok := userStatuses.lookup(string(text))
	if !ok {
		return fmt.Errorf("unknown user status %q (valid: %s)", text, strings.Join(userStatuses.names, ", "))
	}
	*s = value
	return nil
}

// AccessLevel is a room's privacy setting.
type AccessLevel int

const (
	// AccessPrivate restricts the room to invited members. This is the
	// default.
	AccessPrivate AccessLevel = iota
	AccessPublic
)

var accessLevels = newEnumTable(AccessPrivate, "private", "public")

// ParseAccessLevel resolves a privacy name case-insensitively. Unknown
// names return AccessPrivate.
func ParseAccessLevel(name string) AccessLevel { return accessLevels.parse(name) }

func (a AccessLevel) String() string { return accessLevels.name(a) }

// MarshalText encodes the access level as its lower-case name.
func (a AccessLevel) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText decodes a privacy name, rejecting unknown names.
func (a *AccessLevel) UnmarshalText(text []byte) error {
	value, ok := accessLevels.lookup(string(text))
	if !ok {
		return fmt.Errorf("unknown access level %q (valid: %s)", text, strings.Join(accessLevels.names, ", "))
	}
	*a = value
	return nil
}
