// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the CLI packages.
//
// [NewServer] starts an in-memory HipChat v1 API on an httptest
// listener. It keeps rooms, users, and room history in maps, answers
// in the same JSON shapes as the hosted service, and records every
// request so tests can assert on the form values a command sent.
// Seed it with [Server.AddRoom], [Server.AddUser], and
// [Server.AddMessage]; make an endpoint fail with [Server.Fail].
//
// [UniqueName] generates monotonically increasing names for test
// disambiguation.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package does not import the client library, so it checks the
// client against an independent rendition of the wire format.
package testutil
