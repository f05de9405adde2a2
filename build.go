// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"fmt"
	"os"
)

// BuildEntries reads every file and produces ordered manifest entries with
// contiguous byte offsets plus the derived path-to-hash map. Any unreadable
// file aborts the whole build; no partial result is returned.
func BuildEntries(root string, files []string) ([]FileEntry, map[string]string, error) {
	entries := make([]FileEntry, 0, len(files))
	pathToHash := make(map[string]string, len(files))

	var offset int64
	for _, absPath := range files {
		relPath, err := relativeEntryPath(root, absPath)
		if err != nil {
			return nil, nil, err
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", relPath, err)
		}

		entry := FileEntry{
			Path:       relPath,
			ByteOffset: offset,
			Length:     int64(len(data)),
			Hash:       Sha256Base64(data),
		}

		entries = append(entries, entry)
		pathToHash[relPath] = entry.Hash
		offset += entry.Length
	}

	return entries, pathToHash, nil
}
