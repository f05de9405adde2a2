// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"encoding/json"
	"fmt"
)

// ConditionType discriminates unlock condition variants. The set is
// closed: decoding any other value fails with ErrUnknownConditionType.
type ConditionType int

// Unlock condition variants.
const (
	// ConditionFragments unlocks for a flat fragment cost.
	ConditionFragments ConditionType = 0
	// ConditionGrade requires a minimum grade on a referenced chart.
	ConditionGrade ConditionType = 1
	// ConditionClear requires clearing a referenced chart.
	ConditionClear ConditionType = 2
	// ConditionAnyOf is satisfied when any nested condition is satisfied.
	ConditionAnyOf ConditionType = 3
)

// SongInfo is one playable song record in the songlist document.
type SongInfo struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Artist       string           `json:"artist"`
	BPM          string           `json:"bpm,omitempty"`
	Set          string           `json:"set"`
	Side         int              `json:"side"`
	Date         int64            `json:"date,omitempty"`
	Purchase     string           `json:"purchase,omitempty"`
	RemoteDL     bool             `json:"remote_dl,omitempty"`
	Difficulties []DifficultyInfo `json:"difficulties,omitempty"`
}

// DifficultyInfo is one chart difficulty of a song.
type DifficultyInfo struct {
	RatingClass    int    `json:"ratingClass"`
	Rating         int    `json:"rating"`
	ChartDesigner  string `json:"chartDesigner,omitempty"`
	JacketDesigner string `json:"jacketDesigner,omitempty"`
}

// PackInfo is one song pack record in the packlist document.
type PackInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Section     string `json:"section,omitempty"`
}

// UnlockEntry binds one chart to its unlock conditions.
type UnlockEntry struct {
	SongID      string            `json:"songId"`
	RatingClass int               `json:"ratingClass"`
	Conditions  []UnlockCondition `json:"conditions"`
}

// UnlockCondition is a closed tagged union keyed by conditionType.
// Only the fields of the active variant are serialized.
type UnlockCondition struct {
	Type ConditionType
	// Credit is the fragment cost (ConditionFragments).
	Credit int
	// SongID and RatingClass reference another chart (ConditionGrade, ConditionClear).
	SongID      string
	RatingClass int
	// Grade is the minimum required grade (ConditionGrade).
	Grade int
	// Conditions are nested alternatives (ConditionAnyOf).
	Conditions []UnlockCondition
}

// unlockConditionWire is the flattened JSON carrier for all variants.
type unlockConditionWire struct {
	Type        ConditionType     `json:"conditionType"`
	Credit      *int              `json:"credit,omitempty"`
	SongID      string            `json:"songId,omitempty"`
	RatingClass *int              `json:"ratingClass,omitempty"`
	Grade       *int              `json:"grade,omitempty"`
	Conditions  []UnlockCondition `json:"conditions,omitempty"`
}

// MarshalJSON emits only the fields belonging to the active variant.
func (c UnlockCondition) MarshalJSON() ([]byte, error) {
	wire := unlockConditionWire{Type: c.Type}

	switch c.Type {
	case ConditionFragments:
		credit := c.Credit
		wire.Credit = &credit

	case ConditionGrade:
		ratingClass, grade := c.RatingClass, c.Grade
		wire.SongID = c.SongID
		wire.RatingClass = &ratingClass
		wire.Grade = &grade

	case ConditionClear:
		ratingClass := c.RatingClass
		wire.SongID = c.SongID
		wire.RatingClass = &ratingClass

	case ConditionAnyOf:
		wire.Conditions = c.Conditions
		if wire.Conditions == nil {
			wire.Conditions = []UnlockCondition{}
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownConditionType, c.Type)
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes one variant and rejects unknown discriminants.
func (c *UnlockCondition) UnmarshalJSON(data []byte) error {
	var wire unlockConditionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := UnlockCondition{Type: wire.Type, SongID: wire.SongID}
	if wire.Credit != nil {
		out.Credit = *wire.Credit
	}
	if wire.RatingClass != nil {
		out.RatingClass = *wire.RatingClass
	}
	if wire.Grade != nil {
		out.Grade = *wire.Grade
	}
	out.Conditions = wire.Conditions

	switch wire.Type {
	case ConditionFragments, ConditionGrade, ConditionClear, ConditionAnyOf:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownConditionType, wire.Type)
	}

	*c = out

	return nil
}

// songlistDoc is the on-disk shape of songs/songlist.
type songlistDoc struct {
	Songs []SongInfo `json:"songs"`
}

// packlistDoc is the on-disk shape of songs/packlist.
type packlistDoc struct {
	Packs []PackInfo `json:"packs"`
}

// unlocksDoc is the on-disk shape of songs/unlocks.
type unlocksDoc struct {
	Unlocks []UnlockEntry `json:"unlocks"`
}
