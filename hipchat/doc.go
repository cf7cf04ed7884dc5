// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hipchat is a client for the HipChat v1 REST API.
//
// [Client] holds the API base URL, the HTTP transport, and a static auth
// token kept in mmap-backed secret.Buffer memory. Every operation is a
// single synchronous round trip against a fixed endpoint under
// /v1/rooms/ or /v1/users/; each request carries auth_token and
// format=json. Reads send their parameters in the query string, writes
// send a form-encoded body.
//
// Domain types ([Room], [User], [Message], [File]) are the public model.
// Each has an unexported wire counterpart matching the upstream
// snake_case JSON, with explicit mapping in both directions. Booleans
// travel as 0/1 integers. Enums ([Color], [MessageFormat], [UserStatus],
// [AccessLevel]) travel as lower-case names and decode
// case-insensitively; an absent or unrecognized name decodes to the
// variant documented as the default, which is also the enum's zero value.
//
// Only HTTP 200 counts as success. On any other status, or on a transport
// failure, an operation returns its failure value (nil for single
// objects, an empty slice for lists, false for actions) together with an
// error. Upstream error bodies are surfaced as [*APIError].
//
// Convenience methods that take scalar arguments ([Client.CreateNamedRoom],
// [Client.Send], [Client.CreateUserAccount], [Client.UpdateUserFields])
// build the domain value and delegate to the by-object method.
package hipchat
