// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds credential material (HipChat auth tokens, user
// passwords typed at the CLI) outside the Go heap.
//
// [Buffer] allocates memory via mmap(MAP_ANONYMOUS), locks it into RAM
// via mlock, and marks it excluded from core dumps via
// madvise(MADV_DONTDUMP). On Close, the memory is zeroed, unlocked, and
// unmapped. After Close, any access panics. Close is idempotent.
//
// Constructors:
//
//   - [New] -- allocates a zero-filled buffer of a given size
//   - [NewFromBytes] -- copies into protected memory, zeros the source
//   - [NewFromString] -- copies a string into protected memory
//   - [ReadFromPath] -- reads a file (or stdin for "-") with whitespace trimmed
//   - [ReadLine] -- reads the first line of a reader, such as a piped password
//
// [Buffer.Fingerprint] returns a short blake3 digest so logs can
// correlate requests made with the same token without revealing it.
//
// Depends on golang.org/x/sys/unix and github.com/zeebo/blake3.
package secret
