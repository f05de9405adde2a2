// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal serializes the manifest to its on-disk JSON form.
// Map keys are emitted in sorted order, so identical manifests
// serialize to identical bytes.
func (m *Manifest) Marshal() ([]byte, error) {
	if m.Removed == nil {
		m.Removed = []string{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	return append(data, '\n'), nil
}

// ParseManifest decodes a meta.cb document.
func ParseManifest(data []byte) (*Manifest, error) {
	manifest := new(Manifest)
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	return manifest, nil
}

// ReadManifest loads and decodes a meta.cb document from path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}

		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	return ParseManifest(data)
}

// newManifestUUID returns a fresh 18-char lowercase hex manifest identity.
func newManifestUUID() (string, error) {
	var buf [manifestUUIDBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate manifest uuid: %w", err)
	}

	return hex.EncodeToString(buf[:]), nil
}
