// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("valid size", func(t *testing.T) {
		buffer, err := New(64)
		if err != nil {
			t.Fatalf("New(64) failed: %v", err)
		}
		defer buffer.Close()

		if buffer.Len() != 64 {
			t.Errorf("expected length 64, got %d", buffer.Len())
		}
		for index, value := range buffer.Bytes() {
			if value != 0 {
				t.Fatalf("expected zero at index %d, got %d", index, value)
			}
		}
	})

	t.Run("non-positive size", func(t *testing.T) {
		if _, err := New(0); err == nil {
			t.Fatal("expected error for zero size")
		}
		if _, err := New(-1); err == nil {
			t.Fatal("expected error for negative size")
		}
	})
}

func TestNewFromBytes(t *testing.T) {
	source := []byte("a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3")
	originalContent := string(source)

	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != originalContent {
		t.Errorf("expected %q, got %q", originalContent, got)
	}
	for index, value := range source {
		if value != 0 {
			t.Fatalf("source byte %d was not zeroed: got %d", index, value)
		}
	}

	if _, err := NewFromBytes([]byte{}); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestFingerprint(t *testing.T) {
	first, err := NewFromString("token-one")
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	defer first.Close()
	again, err := NewFromString("token-one")
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	defer again.Close()
	other, err := NewFromString("token-two")
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	defer other.Close()

	fingerprint := first.Fingerprint()
	if len(fingerprint) != 2*fingerprintLength {
		t.Errorf("expected %d hex characters, got %q", 2*fingerprintLength, fingerprint)
	}
	if fingerprint != again.Fingerprint() {
		t.Error("same token produced different fingerprints")
	}
	if fingerprint == other.Fingerprint() {
		t.Error("different tokens produced the same fingerprint")
	}
	if fingerprint == "token-one" {
		t.Error("fingerprint must not be the token")
	}
}

func TestBuffer_Close(t *testing.T) {
	buffer, err := New(32)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	copy(buffer.Bytes(), []byte("this should be zeroed"))

	if err := buffer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if buffer.data != nil {
		t.Error("expected data to be nil after Close")
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	for name, access := range map[string]func(){
		"Bytes":       func() { buffer.Bytes() },
		"String":      func() { _ = buffer.String() },
		"Fingerprint": func() { buffer.Fingerprint() },
	} {
		t.Run(name+" panics after close", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic on %s() after Close", name)
				}
			}()
			access()
		})
	}
}

func TestReadFromPath_Cases(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("  abc123\n"), 0600); err != nil {
			t.Fatalf("writing token file: %v", err)
		}
		buffer, err := ReadFromPath(path)
		if err != nil {
			t.Fatalf("ReadFromPath failed: %v", err)
		}
		defer buffer.Close()
		if buffer.String() != "abc123" {
			t.Errorf("expected abc123, got %q", buffer.String())
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte(" \n"), 0600); err != nil {
			t.Fatalf("writing token file: %v", err)
		}
		if _, err := ReadFromPath(path); err == nil {
			t.Fatal("expected error for whitespace-only file")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFromPath(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
