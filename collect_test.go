// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestCollectFilesSortedRecursive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "songs/songlist", []byte("x"))
	writeTestFile(t, root, "songs/song1/base.ogg", []byte("x"))
	writeTestFile(t, root, "img/pack.png", []byte("x"))
	writeTestFile(t, root, "songs/packlist", []byte("x"))

	files, err := CollectFiles(root, CollectOptions{})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}

	want := []string{
		"img/pack.png",
		"songs/packlist",
		"songs/song1/base.ogg",
		"songs/songlist",
	}
	if len(files) != len(want) {
		t.Fatalf("collected %d files, want %d", len(files), len(want))
	}
	for i, relPath := range want {
		if files[i] != filepath.Join(root, filepath.FromSlash(relPath)) {
			t.Fatalf("files[%d]=%q, want %q", i, files[i], relPath)
		}
	}
}

func TestCollectFilesExcludesOldjson(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "songs/songlist", []byte("x"))
	writeTestFile(t, root, "songs/songlist.oldjson", []byte("x"))
	writeTestFile(t, root, "songs/STALE.OLDJSON", []byte("x"))

	files, err := CollectFiles(root, CollectOptions{})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("collected %d files, want 1: %v", len(files), files)
	}
	if files[0] != filepath.Join(root, "songs", "songlist") {
		t.Fatalf("files[0]=%q, want songs/songlist", files[0])
	}
}

func TestCollectFilesExtraPatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "songs/songlist", []byte("x"))
	writeTestFile(t, root, "notes.tmp", []byte("x"))

	files, err := CollectFiles(root, CollectOptions{Exclude: []string{"*.tmp"}})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("collected %d files, want 1: %v", len(files), files)
	}
}

func TestCollectFilesMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(filepath.Join(t.TempDir(), "absent"), CollectOptions{})
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}
