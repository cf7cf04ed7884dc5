// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"net/http"
	"strconv"
	"strings"
)

// parseInt parses a decimal integer, trimming surrounding whitespace.
// The boolean is false for empty, non-numeric, or out-of-range text.
func parseInt(text string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return value, true
}

// isNullOrEmpty reports whether a collection is nil or has no elements.
// Absent and empty lists on the wire are treated alike.
func isNullOrEmpty[T any](items []T) bool {
	return len(items) == 0
}

// mapSafely applies transform to each element of items in order. The
// result is never nil: a nil or empty input yields an empty slice.
func mapSafely[From, To any](items []From, transform func(From) To) []To {
	if isNullOrEmpty(items) {
		return []To{}
	}
	result := make([]To, 0, len(items))
	for _, item := range items {
		result = append(result, transform(item))
	}
	return result
}

// responseOK reports whether a round trip succeeded: the transport
// completed without error and the server answered exactly 200.
func responseOK(statusCode int, transportErr error) bool {
	return transportErr == nil && statusCode == http.StatusOK
}

// flagValue encodes a boolean as the API's "0"/"1" form value.
func flagValue(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// Ptr returns a pointer to value. Useful for optional request fields
// such as [ListUsersOptions.IncludeDeleted].
func Ptr[T any](value T) *T {
	return &value
}
