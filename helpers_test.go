// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file with parent directories under root.
func writeTestFile(t *testing.T, root string, relPath string, data []byte) string {
	t.Helper()

	absPath := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", relPath, err)
	}

	return absPath
}

// makeActiveFolder builds the standard four-file test tree:
// songlist 200 bytes, packlist 50 bytes, unlocks 10 bytes, one 1000-byte
// song asset.
func makeActiveFolder(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, root, SonglistPath, bytes.Repeat([]byte("s"), 200))
	writeTestFile(t, root, PacklistPath, bytes.Repeat([]byte("p"), 50))
	writeTestFile(t, root, UnlocksPath, bytes.Repeat([]byte("u"), 10))
	writeTestFile(t, root, "songs/song1/base.ogg", bytes.Repeat([]byte("o"), 1000))

	return root
}

// entryPaths extracts entry paths in manifest order.
func entryPaths(entries []FileEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}

	return paths
}
