// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the hipchat command's configuration file.
//
// Configuration is loaded from a single file specified by either the
// HIPCHAT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). Files ending in .json or .jsonc are parsed as JSON
// with comments and trailing commas allowed; anything else is YAML.
// There is no automatic discovery.
//
// The file may contain environment-specific sections (development,
// staging, production) whose non-empty fields override the base values
// when [Config].Environment matches.
//
// ${VAR} and ${VAR:-default} patterns in string fields are expanded
// after overrides are applied, so a checked-in file can refer to
// $HOME or a deployment-specific variable.
//
// The API token never appears in the file itself. [Config.LoadToken]
// reads it from auth.token_file, decrypting with age when the file is
// age-encrypted, and returns it in a secret.Buffer.
package config
