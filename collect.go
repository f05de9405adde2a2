// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/woozymasta/pathrules"
)

// collectedFile pairs one absolute path with its normalized relative form.
type collectedFile struct {
	absPath string
	relPath string
}

// excludeMatcher holds compiled exclusion rules for collection.
type excludeMatcher struct {
	matcher *pathrules.Matcher
}

// newExcludeMatcher compiles built-in plus extra exclusion patterns.
func newExcludeMatcher(extra []string) (*excludeMatcher, error) {
	matcher, err := pathrules.NewMatcher(excludeRules(extra), pathrules.MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   pathrules.ActionInclude,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidExcludePattern, err)
	}

	return &excludeMatcher{matcher: matcher}, nil
}

// Keep reports whether a relative path survives the exclusion filter.
func (m *excludeMatcher) Keep(relPath string) bool {
	if m == nil || m.matcher == nil {
		return true
	}

	candidate := NormalizePath(relPath)
	if candidate == "" {
		return false
	}

	return m.matcher.Included(candidate, false)
}

// CollectFiles recursively enumerates regular files under root and returns
// absolute paths sorted by normalized relative path for deterministic
// manifest order. Files matching the built-in stale-backup filter or
// opts.Exclude patterns are dropped.
func CollectFiles(root string, opts CollectOptions) ([]string, error) {
	opts.applyDefaults()

	collected, err := collectFilesRelative(root, opts)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(collected))
	for _, file := range collected {
		out = append(out, file.absPath)
	}

	return out, nil
}

// collectFilesRelative walks root and returns sorted kept files with both
// absolute and canonical relative paths.
func collectFilesRelative(root string, opts CollectOptions) ([]collectedFile, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, root)
	}

	matcher, err := newExcludeMatcher(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var collected []collectedFile
	walkErr := filepath.WalkDir(root, func(absPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		relPath, err := relativeEntryPath(root, absPath)
		if err != nil {
			return err
		}

		if !matcher.Keep(relPath) {
			opts.Logger.Trace().Str("path", relPath).Msg("excluded from collection")
			return nil
		}

		collected = append(collected, collectedFile{absPath: absPath, relPath: relPath})

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].relPath < collected[j].relPath
	})

	opts.Logger.Debug().Int("files", len(collected)).Str("root", root).Msg("collected file tree")

	return collected, nil
}
