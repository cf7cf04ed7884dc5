// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueName returns a string of the form "prefix-N" where N is a
// monotonically increasing integer. Use it for room names and emails
// that must not collide between subtests sharing a server.
//
//	name := testutil.UniqueName("ops")            // "ops-1", "ops-2", ...
//	email := testutil.UniqueName("dev") + "@x.io" // "dev-3@x.io", ...
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, uniqueCounter.Add(1))
}
