// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// sampleListSet builds a small list collection covering every condition variant.
func sampleListSet() *ListSet {
	return &ListSet{
		Songs: []SongInfo{
			{
				ID:     "lightfall",
				Title:  "Lightfall",
				Artist: "Unknown",
				BPM:    "174",
				Set:    "base",
				Difficulties: []DifficultyInfo{
					{RatingClass: 0, Rating: 4},
					{RatingClass: 2, Rating: 9, ChartDesigner: "k//eternal"},
				},
			},
			{ID: "duskride", Title: "Duskride", Artist: "Unknown", Set: "ext", Side: 1, RemoteDL: true},
		},
		Packs: []PackInfo{
			{ID: "base", Name: "Base Collection"},
			{ID: "ext", Name: "Extend Archive", Description: "Side stories"},
		},
		Unlocks: []UnlockEntry{
			{
				SongID:      "duskride",
				RatingClass: 2,
				Conditions: []UnlockCondition{
					{Type: ConditionAnyOf, Conditions: []UnlockCondition{
						{Type: ConditionFragments, Credit: 500},
						{Type: ConditionGrade, SongID: "lightfall", RatingClass: 2, Grade: 3},
						{Type: ConditionClear, SongID: "lightfall", RatingClass: 1},
					}},
				},
			},
		},
	}
}

func TestSaveLoadListsRoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	lists := sampleListSet()

	if err := SaveLists(root, lists, SaveOptions{}); err != nil {
		t.Fatalf("SaveLists: %v", err)
	}

	loaded, err := LoadLists(root)
	if err != nil {
		t.Fatalf("LoadLists: %v", err)
	}

	if len(loaded.Songs) != 2 || len(loaded.Packs) != 2 || len(loaded.Unlocks) != 1 {
		t.Fatalf("loaded %d/%d/%d records, want 2/2/1",
			len(loaded.Songs), len(loaded.Packs), len(loaded.Unlocks))
	}

	cond := loaded.Unlocks[0].Conditions[0]
	if cond.Type != ConditionAnyOf || len(cond.Conditions) != 3 {
		t.Fatalf("nested condition lost: %+v", cond)
	}
	if cond.Conditions[0].Credit != 500 {
		t.Fatalf("fragment credit=%d, want 500", cond.Conditions[0].Credit)
	}
	if cond.Conditions[1].Grade != 3 || cond.Conditions[1].SongID != "lightfall" {
		t.Fatalf("grade condition lost: %+v", cond.Conditions[1])
	}
}

func TestSaveListsBackupRotation(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	lists := sampleListSet()

	if err := SaveLists(root, lists, SaveOptions{}); err != nil {
		t.Fatalf("SaveLists: %v", err)
	}

	first, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(SonglistPath)))
	if err != nil {
		t.Fatalf("read songlist: %v", err)
	}

	lists.Songs = lists.Songs[:1]
	if err := SaveLists(root, lists, SaveOptions{}); err != nil {
		t.Fatalf("SaveLists: %v", err)
	}

	backup, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(SonglistPath)+oldListSuffix))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != string(first) {
		t.Fatal("backup does not hold previous songlist content")
	}

	// Rotated backups never enter a manifest.
	manifest, err := Generate(root, filepath.Join(t.TempDir(), "meta.cb"), GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, entry := range manifest.Added {
		if filepath.Ext(entry.Path) == oldListSuffix {
			t.Fatalf("backup %s packaged", entry.Path)
		}
	}
}

func TestSaveListsNoBackup(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	lists := sampleListSet()

	if err := SaveLists(root, lists, SaveOptions{NoBackup: true}); err != nil {
		t.Fatalf("SaveLists: %v", err)
	}
	if err := SaveLists(root, lists, SaveOptions{NoBackup: true}); err != nil {
		t.Fatalf("SaveLists: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(SonglistPath)+oldListSuffix)); !os.IsNotExist(err) {
		t.Fatal("backup written despite NoBackup")
	}
}

func TestSaveListsNil(t *testing.T) {
	t.Parallel()

	if err := SaveLists(t.TempDir(), nil, SaveOptions{}); !errors.Is(err, ErrNilListSet) {
		t.Fatalf("expected ErrNilListSet, got %v", err)
	}
}

func TestLoadListsMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadLists(t.TempDir()); !errors.Is(err, ErrListFileMissing) {
		t.Fatalf("expected ErrListFileMissing, got %v", err)
	}
}

func TestUnlockConditionClosedUnion(t *testing.T) {
	t.Parallel()

	var cond UnlockCondition
	err := json.Unmarshal([]byte(`{"conditionType":99}`), &cond)
	if !errors.Is(err, ErrUnknownConditionType) {
		t.Fatalf("expected ErrUnknownConditionType, got %v", err)
	}

	if _, err := json.Marshal(UnlockCondition{Type: ConditionType(42)}); err == nil {
		t.Fatal("expected marshal error for unknown variant")
	}
}

func TestUnlockConditionVariantFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(UnlockCondition{Type: ConditionFragments, Credit: 100, SongID: "ignored"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := wire["songId"]; ok {
		t.Fatalf("fragment variant leaked foreign field: %s", data)
	}
	if wire["credit"] != float64(100) {
		t.Fatalf("credit=%v, want 100", wire["credit"])
	}
}
