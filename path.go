// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath converts a bundle-internal path to normalized slash-separated form.
// It trims spaces, accepts both "/" and "\", removes leading "./" and "/", and cleans "." segments.
func NormalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, `\`, `/`)
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// relativeEntryPath converts an absolute file path under root to canonical
// manifest form: root-relative with "/" separators.
func relativeEntryPath(root string, absPath string) (string, error) {
	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", absPath, err)
	}

	normalized := NormalizePath(filepath.ToSlash(rel))
	if normalized == "" || strings.HasPrefix(normalized, "../") || normalized == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntryPath, rel)
	}

	return normalized, nil
}
