// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"

	"github.com/bureau-foundation/hipchat/lib/secret"
)

// maxTokenFileSize bounds decrypted token reads. API tokens are 40
// characters; anything near this size is not a token file.
const maxTokenFileSize = 64 << 10

// LoadToken reads the API token from Auth.TokenFile. The file is
// age-decrypted when IdentityFile is set or the file name ends in .age.
// A token file of "-" reads the first line of stdin. The caller must
// close the returned buffer.
func (c *Config) LoadToken() (*secret.Buffer, error) {
	if c.Auth.TokenFile == "" {
		return nil, fmt.Errorf("auth.token_file is not configured")
	}
	if c.Auth.IdentityFile == "" && !strings.HasSuffix(c.Auth.TokenFile, ".age") {
		token, err := secret.ReadFromPath(c.Auth.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("reading token file: %w", err)
		}
		return token, nil
	}
	return DecryptTokenFile(c.Auth.TokenFile, c.Auth.IdentityFile)
}

// DecryptTokenFile decrypts an age-encrypted token file with the
// identities in identityPath.
func DecryptTokenFile(tokenPath, identityPath string) (*secret.Buffer, error) {
	if identityPath == "" {
		return nil, fmt.Errorf("token file %s is age-encrypted but auth.identity_file is not set", tokenPath)
	}

	identityFile, err := os.Open(identityPath)
	if err != nil {
		return nil, fmt.Errorf("opening identity file: %w", err)
	}
	defer identityFile.Close()

	identities, err := age.ParseIdentities(identityFile)
	if err != nil {
		return nil, fmt.Errorf("parsing identity file %s: %w", identityPath, err)
	}

	tokenFile, err := os.Open(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("opening token file: %w", err)
	}
	defer tokenFile.Close()

	reader, err := age.Decrypt(tokenFile, identities...)
	if err != nil {
		return nil, fmt.Errorf("decrypting token file %s: %w", tokenPath, err)
	}

	plaintext, err := io.ReadAll(io.LimitReader(reader, maxTokenFileSize))
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("reading decrypted token: %w", err)
	}

	token, err := secret.FromData(plaintext)
	if err != nil {
		return nil, fmt.Errorf("token file %s: %w", tokenPath, err)
	}
	return token, nil
}
