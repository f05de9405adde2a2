// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ListSet is the in-memory song, pack, and unlock collection backing one
// active folder.
type ListSet struct {
	Songs   []SongInfo    `json:"songs"`
	Packs   []PackInfo    `json:"packs"`
	Unlocks []UnlockEntry `json:"unlocks"`
}

// oldListSuffix marks rotated previous list content. Files with this
// suffix are excluded from packaging by the default collection filter.
const oldListSuffix = ".oldjson"

// LoadLists reads the three list documents from the active folder at root.
func LoadLists(root string) (*ListSet, error) {
	lists := new(ListSet)

	var songs songlistDoc
	if err := readListDoc(root, SonglistPath, &songs); err != nil {
		return nil, err
	}
	lists.Songs = songs.Songs

	var packs packlistDoc
	if err := readListDoc(root, PacklistPath, &packs); err != nil {
		return nil, err
	}
	lists.Packs = packs.Packs

	var unlocks unlocksDoc
	if err := readListDoc(root, UnlocksPath, &unlocks); err != nil {
		return nil, err
	}
	lists.Unlocks = unlocks.Unlocks

	return lists, nil
}

// SaveLists writes the three list documents into the active folder at root,
// creating songs/ when absent. Existing list content is rotated to
// "<name>.oldjson" first unless opts.NoBackup is set.
func SaveLists(root string, lists *ListSet, opts SaveOptions) error {
	opts.applyDefaults()

	if lists == nil {
		return ErrNilListSet
	}

	if err := os.MkdirAll(filepath.Join(root, "songs"), 0o755); err != nil {
		return fmt.Errorf("create songs directory: %w", err)
	}

	songs := lists.Songs
	if songs == nil {
		songs = []SongInfo{}
	}
	packs := lists.Packs
	if packs == nil {
		packs = []PackInfo{}
	}
	unlocks := lists.Unlocks
	if unlocks == nil {
		unlocks = []UnlockEntry{}
	}

	if err := writeListDoc(root, SonglistPath, songlistDoc{Songs: songs}, opts); err != nil {
		return err
	}

	if err := writeListDoc(root, PacklistPath, packlistDoc{Packs: packs}, opts); err != nil {
		return err
	}

	return writeListDoc(root, UnlocksPath, unlocksDoc{Unlocks: unlocks}, opts)
}

// readListDoc loads and decodes one list file.
func readListDoc(root string, relPath string, out any) error {
	absPath := filepath.Join(root, filepath.FromSlash(relPath))
	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrListFileMissing, relPath)
		}

		return fmt.Errorf("read %s: %w", relPath, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", relPath, err)
	}

	return nil
}

// writeListDoc serializes and writes one list file with backup rotation.
func writeListDoc(root string, relPath string, doc any, opts SaveOptions) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", relPath, err)
	}
	data = append(data, '\n')

	absPath := filepath.Join(root, filepath.FromSlash(relPath))
	if !opts.NoBackup {
		if err := rotateListBackup(absPath); err != nil {
			return err
		}
	}

	if err := writeFileAtomic(absPath, data); err != nil {
		return err
	}

	opts.Logger.Debug().Str("path", relPath).Int("bytes", len(data)).Msg("list file written")

	return nil
}

// rotateListBackup moves existing list content to its .oldjson sibling.
func rotateListBackup(absPath string) error {
	if _, err := os.Stat(absPath); err != nil {
		return nil
	}

	backupPath := absPath + oldListSuffix
	if err := os.Rename(absPath, backupPath); err != nil {
		return fmt.Errorf("rotate backup %s: %w", backupPath, err)
	}

	return nil
}
