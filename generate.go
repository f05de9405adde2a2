// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Generate builds a manifest for the active folder at root and writes it to
// outPath. The write goes through a temp file and rename so outPath is
// either the previous content or the complete new manifest.
//
// It fails fast on the first structural problem: missing root, then missing
// songlist, packlist, unlocks, in that order.
func Generate(root string, outPath string, opts GenerateOptions) (*Manifest, error) {
	opts.applyDefaults()

	if strings.TrimSpace(outPath) == "" {
		return nil, ErrEmptyOutputPath
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, root)
	}

	for _, relPath := range detailPaths {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(relPath))); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrListFileMissing, relPath)
		}
	}

	manifest, err := buildManifest(root, opts)
	if err != nil {
		return nil, err
	}

	data, err := manifest.Marshal()
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outPath, data); err != nil {
		return nil, err
	}

	opts.Logger.Info().
		Str("uuid", manifest.UUID).
		Str("version", manifest.VersionNumber).
		Int("files", len(manifest.Added)).
		Str("out", outPath).
		Msg("manifest written")

	return manifest, nil
}

// buildManifest collects, hashes, and assembles the manifest document.
func buildManifest(root string, opts GenerateOptions) (*Manifest, error) {
	files, err := CollectFiles(root, CollectOptions{
		Exclude: opts.Exclude,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	added, pathToHash, err := BuildEntries(root, files)
	if err != nil {
		return nil, err
	}

	details, err := ComputeDetails(root)
	if err != nil {
		return nil, err
	}

	uuid, err := newManifestUUID()
	if err != nil {
		return nil, err
	}

	return &Manifest{
		VersionNumber:            opts.BundleVersion,
		PreviousVersionNumber:    opts.PreviousVersion,
		ApplicationVersionNumber: opts.AppVersion,
		UUID:                     uuid,
		// No diffing against a previous manifest exists; the removed
		// list is always produced empty.
		Removed:       []string{},
		Added:         added,
		PathToHash:    pathToHash,
		PathToDetails: details,
	}, nil
}

// writeFileAtomic writes data to path via temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}

	tmpPath := tmp.Name()
	defer func() {
		if tmpPath != "" {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp manifest: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp manifest: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp manifest: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}
	tmpPath = ""

	return nil
}
