// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arktools/metacb"
)

var (
	argUpdateRoot     string
	argUpdateFrom     string
	argUpdateNoBackup bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Write song, pack, and unlock lists into an active folder",
	Long: `Update reads a combined list document (songs, packs, unlocks) and
writes the three list files into the active folder. Previous list content
is rotated to "<name>.oldjson" unless --no-backup is set.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&argUpdateRoot, "root", "r", "", "Active folder to update (required)")
	updateCmd.Flags().StringVarP(&argUpdateFrom, "from", "f", "", "Combined list document to apply (required)")
	updateCmd.Flags().BoolVar(&argUpdateNoBackup, "no-backup", false, "Do not rotate previous list content")
	_ = updateCmd.MarkFlagRequired("root")
	_ = updateCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(argUpdateFrom)
	if err != nil {
		return fmt.Errorf("read list document %s: %w", argUpdateFrom, err)
	}

	lists := new(metacb.ListSet)
	if err := json.Unmarshal(data, lists); err != nil {
		return fmt.Errorf("decode list document %s: %w", argUpdateFrom, err)
	}

	opts := metacb.SaveOptions{
		Logger:   &logger,
		NoBackup: argUpdateNoBackup,
	}
	if err := metacb.SaveLists(argUpdateRoot, lists, opts); err != nil {
		return err
	}

	logger.Info().
		Str("root", argUpdateRoot).
		Int("songs", len(lists.Songs)).
		Int("packs", len(lists.Packs)).
		Int("unlocks", len(lists.Unlocks)).
		Msg("active folder updated")

	return nil
}
