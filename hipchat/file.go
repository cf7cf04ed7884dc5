// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

// File is an attachment on a history message.
type File struct {
	Name string `json:"name"`
	// Size is the attachment size in bytes.
	Size int    `json:"size"`
	URL  string `json:"url"`
}

type fileWire struct {
	Name string  `json:"name"`
	Size flexInt `json:"size"`
	URL  string  `json:"url"`
}

func toFileWire(file File) fileWire {
	return fileWire{Name: file.Name, Size: flexInt(file.Size), URL: file.URL}
}

func (w fileWire) toFile() File {
	return File{Name: w.Name, Size: int(w.Size), URL: w.URL}
}
