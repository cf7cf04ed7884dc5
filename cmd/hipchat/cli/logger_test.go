// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	var output bytes.Buffer
	logger := newLogger(&output, false, false)
	logger.Debug("request", "service", "rooms/list")
	logger.Warn("slow response", "service", "rooms/list")

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the warning, got %d lines:\n%s", len(lines), output.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("piped output should be JSON: %v", err)
	}
	if record["msg"] != "slow response" {
		t.Errorf("msg = %v", record["msg"])
	}

	output.Reset()
	verbose := newLogger(&output, true, true)
	verbose.Debug("request", "service", "rooms/list")
	if !strings.Contains(output.String(), "level=DEBUG") || !strings.Contains(output.String(), "service=rooms/list") {
		t.Errorf("verbose terminal output should be text at debug level: %s", output.String())
	}
}
