// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-200 response from the HipChat API.
// Callers can use errors.As to extract the structured information:
//
//	var apiErr *hipchat.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.StatusCode == http.StatusNotFound { ... }
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Type is the upstream error type (e.g., "Unauthorized"), or the
	// HTTP status text when the body carried none.
	Type string
	// Message is the human-readable error description from the server,
	// or the raw response body when it was not the JSON error envelope.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hipchat: %s (%d): %s", e.Type, e.StatusCode, e.Message)
}

// errorEnvelope is the upstream error body:
// {"error": {"code": 401, "type": "Unauthorized", "message": "Auth token not found."}}
type errorEnvelope struct {
	Error *struct {
		Code    flexInt `json:"code"`
		Type    string  `json:"type"`
		Message string  `json:"message"`
	} `json:"error"`
}

// newAPIError builds an *APIError from a failed response.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Type:       http.StatusText(statusCode),
		Message:    strings.TrimSpace(string(body)),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return apiErr
	}
	if envelope.Error.Type != "" {
		apiErr.Type = envelope.Error.Type
	}
	apiErr.Message = envelope.Error.Message
	return apiErr
}

// IsAPIError reports whether err is an *APIError with the given status code.
func IsAPIError(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsNotFound reports whether err is an *APIError with status 404.
func IsNotFound(err error) bool {
	return IsAPIError(err, http.StatusNotFound)
}
