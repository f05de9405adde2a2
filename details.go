// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ComputeDetails returns keyed integrity tags for the three list files
// under root. Absent files are omitted from the map, never inserted empty.
func ComputeDetails(root string) (map[string]string, error) {
	details := make(map[string]string, len(detailPaths))
	for _, relPath := range detailPaths {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("read %s: %w", relPath, err)
		}

		details[relPath] = HmacSHA256Base64(data, DetailHashKey)
	}

	return details, nil
}
