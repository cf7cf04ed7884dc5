// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bureau-foundation/hipchat/hipchat"
)

// ErrorCategory classifies command errors so scripts can decide whether
// to retry, fix input, or escalate without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation: missing arguments, unparseable values, or a
	// request the server rejected as malformed. Fix the input.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound: the room or user does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden: the token is missing, invalid, or lacks the
	// admin scope the operation needs.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict: the operation conflicts with existing state,
	// such as a duplicate room name or email.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient: network failure, timeout, rate limit, or a
	// server error. Back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal: anything else.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by commands. It wraps the
// underlying error so errors.Is and errors.As still reach it.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode maps the category onto a process exit status: 2 for usage
// problems, 3 for missing resources, 4 for permission errors, 5 for
// transient failures, 1 otherwise.
func (e *ToolError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryForbidden:
		return 4
	case CategoryTransient:
		return 5
	default:
		return 1
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps an error from the hipchat client in a ToolError whose
// category follows the HTTP status of an *hipchat.APIError. Errors
// without a status (network failures, timeouts) are transient. nil
// and errors that are already ToolErrors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return err
	}

	var apiErr *hipchat.APIError
	if !errors.As(err, &apiErr) {
		if errors.Is(err, context.Canceled) {
			return &ToolError{Category: CategoryInternal, Err: err}
		}
		return &ToolError{Category: CategoryTransient, Err: err}
	}

	switch status := apiErr.StatusCode; {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &ToolError{Category: CategoryValidation, Err: err}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ToolError{Category: CategoryForbidden, Err: err}
	case status == http.StatusNotFound:
		return &ToolError{Category: CategoryNotFound, Err: err}
	case status == http.StatusConflict:
		return &ToolError{Category: CategoryConflict, Err: err}
	case status == http.StatusTooManyRequests || status == http.StatusRequestTimeout || status >= 500:
		return &ToolError{Category: CategoryTransient, Err: err}
	default:
		return &ToolError{Category: CategoryInternal, Err: err}
	}
}

// IsNotFound reports whether err is a not-found ToolError or an API
// 404.
func IsNotFound(err error) bool {
	var toolErr *ToolError
	if errors.As(err, &toolErr) && toolErr.Category == CategoryNotFound {
		return true
	}
	return hipchat.IsNotFound(err)
}
