// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Verify recomputes every hash declared by the manifest at manifestPath
// against the directory at root and reports exact mismatches.
//
// Only missing top-level inputs (manifest file, root directory) and an
// unparsable manifest stop the pass early. Content mismatches never
// short-circuit: all entries are checked and aggregate counts reported.
func Verify(manifestPath string, root string, opts VerifyOptions) *ValidationResult {
	opts.applyDefaults()
	result := new(ValidationResult)

	manifest, err := ReadManifest(manifestPath)
	if err != nil {
		result.addErrorf("%v", err)
		return result
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		result.addErrorf("bundle root directory not found: %s", root)
		return result
	}

	verifyContentHashes(manifest, root, opts, result)
	verifyDetailTags(manifest, root, result)
	verifyAddedPresence(manifest, root, result)

	result.addInfof("verified %d/%d files, %d mismatched",
		result.Verified, result.Total, result.Mismatched)

	opts.Logger.Info().
		Int("total", result.Total).
		Int("verified", result.Verified).
		Int("mismatched", result.Mismatched).
		Bool("valid", result.IsValid()).
		Msg("bundle verification finished")

	return result
}

// verifyContentHashes recomputes SHA-256 for every pathToHash entry.
func verifyContentHashes(manifest *Manifest, root string, opts VerifyOptions, result *ValidationResult) {
	paths := make([]string, 0, len(manifest.PathToHash))
	for relPath := range manifest.PathToHash {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)

	for _, relPath := range paths {
		result.Total++

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.addErrorf("file missing: %s", relPath)
			} else {
				result.addErrorf("read failed: %s: %v", relPath, err)
			}

			result.Mismatched++
			continue
		}

		expected := manifest.PathToHash[relPath]
		if got := Sha256Base64(data); got != expected {
			result.addErrorf("hash mismatch: %s: expected %s, got %s", relPath, expected, got)
			result.Mismatched++
			continue
		}

		result.Verified++
		opts.Logger.Trace().Str("path", relPath).Msg("hash verified")
	}
}

// verifyDetailTags recomputes keyed integrity tags for the three list files.
func verifyDetailTags(manifest *Manifest, root string, result *ValidationResult) {
	for _, relPath := range detailPaths {
		expected, ok := manifest.PathToDetails[relPath]
		if !ok {
			result.addWarningf("manifest has no integrity tag for %s", relPath)
			continue
		}

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
		if err != nil {
			result.addWarningf("list file missing for integrity tag: %s", relPath)
			continue
		}

		if got := HmacSHA256Base64(data, DetailHashKey); got != expected {
			result.addErrorf("integrity tag mismatch: %s", relPath)
		}
	}
}

// verifyAddedPresence warns for declared entries absent on disk. This
// deliberately overlaps the per-path hash check: both findings fire when a
// listed file is gone.
func verifyAddedPresence(manifest *Manifest, root string, result *ValidationResult) {
	for _, entry := range manifest.Added {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(entry.Path))); err != nil {
			result.addWarningf("added entry missing on disk: %s", entry.Path)
		}
	}
}
