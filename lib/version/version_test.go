// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	originalDirty := GitDirty
	defer func() { GitDirty = originalDirty }()

	GitDirty = "false"
	if strings.Contains(Info(), "-dirty") {
		t.Errorf("clean build reported dirty: %s", Info())
	}

	GitDirty = "true"
	if !strings.Contains(Info(), GitCommit+"-dirty") {
		t.Errorf("dirty build missing marker: %s", Info())
	}
}

func TestFull(t *testing.T) {
	if !strings.Contains(Full(), "Go: go") {
		t.Errorf("Full() missing Go version: %s", Full())
	}
}

func TestUserAgent(t *testing.T) {
	if UserAgent() != "hipchat-go/"+Version {
		t.Errorf("unexpected user agent: %s", UserAgent())
	}
}
