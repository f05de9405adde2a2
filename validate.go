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

// ValidationResult accumulates findings from one validation or
// verification pass.
type ValidationResult struct {
	// Errors are blocking findings; any entry makes the result invalid.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Warnings are advisory findings that never block packaging.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// Infos are summary lines for reporting.
	Infos []string `json:"infos,omitempty" yaml:"infos,omitempty"`
	// Total is the number of hash entries checked during verification.
	Total int `json:"total,omitempty" yaml:"total,omitempty"`
	// Verified is the number of entries whose hash matched.
	Verified int `json:"verified,omitempty" yaml:"verified,omitempty"`
	// Mismatched is the number of entries whose hash did not match.
	Mismatched int `json:"mismatched,omitempty" yaml:"mismatched,omitempty"`
}

// IsValid reports whether the pass accumulated no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarningf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addInfof(format string, args ...any) {
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

// ValidateActiveFolder checks structural prerequisites of an active folder
// before packaging: the three list files must exist and the songlist must
// not be empty. Missing recommended per-song assets and a missing image
// directory are reported as warnings only.
func ValidateActiveFolder(root string, opts ValidateOptions) *ValidationResult {
	opts.applyDefaults()
	result := new(ValidationResult)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		result.addErrorf("target directory not found: %s", root)
		return result
	}

	for _, relPath := range detailPaths {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(relPath))); err != nil {
			result.addErrorf("mandatory list file missing: %s", relPath)
		}
	}

	songlist, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(SonglistPath)))
	if err == nil && strings.TrimSpace(string(songlist)) == "" {
		result.addErrorf("songlist is empty: %s", SonglistPath)
	}

	checkSongAssetFolders(root, opts, result)

	if _, err := os.Stat(filepath.Join(root, ImageDir)); err != nil {
		result.addWarningf("image asset directory missing: %s", ImageDir)
	}

	for _, finding := range result.Errors {
		opts.Logger.Error().Str("root", root).Msg(finding)
	}
	for _, finding := range result.Warnings {
		opts.Logger.Warn().Str("root", root).Msg(finding)
	}

	return result
}

// checkSongAssetFolders warns about dl_ prefixed song folders missing
// recommended cover or preview assets.
func checkSongAssetFolders(root string, opts ValidateOptions, result *ValidationResult) {
	songsDir := filepath.Join(root, "songs")
	dirEntries, err := os.ReadDir(songsDir)
	if err != nil {
		return
	}

	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() || !strings.HasPrefix(strings.ToLower(dirEntry.Name()), "dl_") {
			continue
		}

		songDir := filepath.Join(songsDir, dirEntry.Name())
		relDir := "songs/" + dirEntry.Name()
		if _, err := os.Stat(filepath.Join(songDir, opts.CoverImageName)); err != nil {
			result.addWarningf("recommended cover image missing: %s/%s", relDir, opts.CoverImageName)
		}

		if _, err := os.Stat(filepath.Join(songDir, opts.PreviewAudioName)); err != nil {
			result.addWarningf("recommended preview audio missing: %s/%s", relDir, opts.PreviewAudioName)
		}
	}
}
