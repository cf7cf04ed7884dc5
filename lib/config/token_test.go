// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"
)

const testToken = "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2"

// writeEncryptedToken encrypts token to a fresh identity and writes the
// ciphertext and identity into dir.
func writeEncryptedToken(t *testing.T, dir, token string) (tokenPath, identityPath string) {
	t.Helper()

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity failed: %v", err)
	}

	var ciphertext bytes.Buffer
	writer, err := age.Encrypt(&ciphertext, identity.Recipient())
	if err != nil {
		t.Fatalf("age.Encrypt failed: %v", err)
	}
	if _, err := writer.Write([]byte(token + "\n")); err != nil {
		t.Fatalf("writing plaintext: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("finalizing encryption: %v", err)
	}

	tokenPath = filepath.Join(dir, "token.age")
	identityPath = filepath.Join(dir, "identity.txt")
	if err := os.WriteFile(tokenPath, ciphertext.Bytes(), 0600); err != nil {
		t.Fatalf("writing token file: %v", err)
	}
	identityContent := "# created for test\n" + identity.String() + "\n"
	if err := os.WriteFile(identityPath, []byte(identityContent), 0600); err != nil {
		t.Fatalf("writing identity file: %v", err)
	}
	return tokenPath, identityPath
}

func TestLoadToken(t *testing.T) {
	t.Run("plain file", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(tokenPath, []byte("  "+testToken+"\n"), 0600); err != nil {
			t.Fatalf("writing token: %v", err)
		}
		cfg := Default()
		cfg.Auth.TokenFile = tokenPath

		token, err := cfg.LoadToken()
		if err != nil {
			t.Fatalf("LoadToken failed: %v", err)
		}
		defer token.Close()
		if token.String() != testToken {
			t.Errorf("token = %q, want %q", token.String(), testToken)
		}
	})

	t.Run("age encrypted", func(t *testing.T) {
		tokenPath, identityPath := writeEncryptedToken(t, t.TempDir(), testToken)
		cfg := Default()
		cfg.Auth.TokenFile = tokenPath
		cfg.Auth.IdentityFile = identityPath

		token, err := cfg.LoadToken()
		if err != nil {
			t.Fatalf("LoadToken failed: %v", err)
		}
		defer token.Close()
		if token.String() != testToken {
			t.Errorf("token = %q, want %q", token.String(), testToken)
		}
	})

	t.Run("age file without identity", func(t *testing.T) {
		tokenPath, _ := writeEncryptedToken(t, t.TempDir(), testToken)
		cfg := Default()
		cfg.Auth.TokenFile = tokenPath

		if _, err := cfg.LoadToken(); err == nil {
			t.Fatal("expected error for .age token without identity")
		}
	})

	t.Run("wrong identity", func(t *testing.T) {
		dir := t.TempDir()
		tokenPath, _ := writeEncryptedToken(t, dir, testToken)
		_, otherIdentity := writeEncryptedToken(t, t.TempDir(), "other")

		if _, err := DecryptTokenFile(tokenPath, otherIdentity); err == nil {
			t.Fatal("expected decryption failure with the wrong identity")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		if _, err := Default().LoadToken(); err == nil {
			t.Fatal("expected error when token_file is unset")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(tokenPath, []byte("\n"), 0600); err != nil {
			t.Fatalf("writing token: %v", err)
		}
		cfg := Default()
		cfg.Auth.TokenFile = tokenPath
		if _, err := cfg.LoadToken(); err == nil {
			t.Fatal("expected error for empty token file")
		}
	})
}
