// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"github.com/rs/zerolog"
	"github.com/woozymasta/pathrules"
)

// Well-known paths inside an active folder, relative to root.
const (
	// SonglistPath is the authoritative song list document.
	SonglistPath = "songs/songlist"
	// PacklistPath is the pack list document.
	PacklistPath = "songs/packlist"
	// UnlocksPath is the unlock condition list document.
	UnlocksPath = "songs/unlocks"
	// ImageDir is the optional top-level image asset directory.
	ImageDir = "img"
)

// Default values used when callers leave options zero.
const (
	// DefaultVersion is used for bundle and application version when unset.
	DefaultVersion = "1.0.0"
	// DefaultExcludePattern filters stale list backups from packaging.
	DefaultExcludePattern = "*.oldjson"
	// DefaultManifestName is the conventional manifest file name.
	DefaultManifestName = "meta.cb"
)

// manifestUUIDBytes is random identity size; rendered as 18 lowercase hex chars.
const manifestUUIDBytes = 9

// detailPaths is the closed set of list files carrying keyed integrity tags.
var detailPaths = [...]string{SonglistPath, PacklistPath, UnlocksPath}

// FileEntry describes one packaged file in the manifest added list.
type FileEntry struct {
	// Path is root-relative with "/" separators, unique within a manifest.
	Path string `json:"path"`
	// ByteOffset is the cumulative sum of preceding entry lengths.
	ByteOffset int64 `json:"byteOffset"`
	// Length is the exact byte count of the file.
	Length int64 `json:"length"`
	// Hash is the base64-encoded SHA-256 digest of the file content.
	Hash string `json:"sha256HashBase64Encoded"`
}

// Manifest is the meta.cb document. Field names are a wire contract
// consumed by the game client and must not change.
type Manifest struct {
	VersionNumber            string            `json:"versionNumber"`
	PreviousVersionNumber    string            `json:"previousVersionNumber,omitempty"`
	ApplicationVersionNumber string            `json:"applicationVersionNumber"`
	UUID                     string            `json:"uuid"`
	Removed                  []string          `json:"removed"`
	Added                    []FileEntry       `json:"added"`
	PathToHash               map[string]string `json:"pathToHash"`
	PathToDetails            map[string]string `json:"pathToDetails"`
}

// CollectOptions configures file tree collection.
type CollectOptions struct {
	// Logger receives per-file trace output; nil means no logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// Exclude are extra exclusion patterns applied on top of the
	// built-in stale-backup filter.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// GenerateOptions configures manifest generation.
type GenerateOptions struct {
	// Logger receives progress output; nil means no logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// BundleVersion is the versionNumber field; empty means DefaultVersion.
	BundleVersion string `json:"bundle_version,omitempty" yaml:"bundle_version,omitempty"`
	// PreviousVersion is the previousVersionNumber field; empty means
	// fresh bundle and the field is omitted from output.
	PreviousVersion string `json:"previous_version,omitempty" yaml:"previous_version,omitempty"`
	// AppVersion is the applicationVersionNumber field; empty means DefaultVersion.
	AppVersion string `json:"app_version,omitempty" yaml:"app_version,omitempty"`
	// Exclude are extra collection exclusion patterns.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// VerifyOptions configures bundle verification.
type VerifyOptions struct {
	// Logger receives per-path trace output; nil means no logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
}

// ValidateOptions configures active folder validation.
type ValidateOptions struct {
	// Logger receives finding output; nil means no logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// CoverImageName is the recommended cover asset inside dl_ song folders.
	CoverImageName string `json:"cover_image_name,omitempty" yaml:"cover_image_name,omitempty"`
	// PreviewAudioName is the recommended preview asset inside dl_ song folders.
	PreviewAudioName string `json:"preview_audio_name,omitempty" yaml:"preview_audio_name,omitempty"`
}

// SaveOptions configures list file persistence.
type SaveOptions struct {
	// Logger receives per-file output; nil means no logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// NoBackup disables rotating previous list content to "<name>.oldjson".
	NoBackup bool `json:"no_backup,omitempty" yaml:"no_backup,omitempty"`
}

// Recommended per-song asset names inside dl_ prefixed folders.
const (
	defaultCoverImageName   = "base.jpg"
	defaultPreviewAudioName = "preview.ogg"
)

// nopLogger is shared fallback for operations invoked without a logger.
var nopLogger = zerolog.Nop()

// applyDefaults fills zero-valued collect options with defaults.
func (opts *CollectOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = &nopLogger
	}
}

// applyDefaults fills zero-valued generate options with defaults.
func (opts *GenerateOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = &nopLogger
	}

	if opts.BundleVersion == "" {
		opts.BundleVersion = DefaultVersion
	}

	if opts.AppVersion == "" {
		opts.AppVersion = DefaultVersion
	}
}

// applyDefaults fills zero-valued verify options with defaults.
func (opts *VerifyOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = &nopLogger
	}
}

// applyDefaults fills zero-valued validate options with defaults.
func (opts *ValidateOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = &nopLogger
	}

	if opts.CoverImageName == "" {
		opts.CoverImageName = defaultCoverImageName
	}

	if opts.PreviewAudioName == "" {
		opts.PreviewAudioName = defaultPreviewAudioName
	}
}

// applyDefaults fills zero-valued save options with defaults.
func (opts *SaveOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = &nopLogger
	}
}

// excludeRules converts raw patterns to ordered exclusion rules with the
// built-in stale-backup filter always first.
func excludeRules(extra []string) []pathrules.Rule {
	rules := make([]pathrules.Rule, 0, len(extra)+1)
	rules = append(rules, pathrules.Rule{
		Action:  pathrules.ActionExclude,
		Pattern: DefaultExcludePattern,
	})

	for _, pattern := range extra {
		if pattern == "" {
			continue
		}

		rules = append(rules, pathrules.Rule{
			Action:  pathrules.ActionExclude,
			Pattern: pattern,
		})
	}

	return rules
}
