// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import "errors"

// Sentinel errors for bundle operations. Use errors.Is in callers.
var (
	// ErrDirectoryNotFound means the bundle root directory does not exist.
	ErrDirectoryNotFound = errors.New("bundle root directory not found")
	// ErrListFileMissing means one of the mandatory list files is absent.
	ErrListFileMissing = errors.New("mandatory list file missing")
	// ErrManifestParse means the manifest document is malformed.
	ErrManifestParse = errors.New("manifest document is malformed")
	// ErrManifestNotFound means the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest file not found")
	// ErrInvalidExcludePattern means one or more exclusion rules are invalid.
	ErrInvalidExcludePattern = errors.New("invalid exclusion rules")
	// ErrInvalidEntryPath means a collected file path is empty or invalid after normalization.
	ErrInvalidEntryPath = errors.New("invalid entry path")
	// ErrEmptyOutputPath means no output path was provided for the manifest.
	ErrEmptyOutputPath = errors.New("output path is empty")
	// ErrNilListSet means no list collection was provided for saving.
	ErrNilListSet = errors.New("list collection is nil")
	// ErrUnknownConditionType means an unlock condition discriminant is not recognized.
	ErrUnknownConditionType = errors.New("unknown unlock condition type")
)
