// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/arktools/metacb"
)

var argCheckRoot string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an active folder's structural prerequisites",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&argCheckRoot, "root", "r", "", "Active folder to validate (required)")
	_ = checkCmd.MarkFlagRequired("root")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	result := metacb.ValidateActiveFolder(argCheckRoot, metacb.ValidateOptions{Logger: &logger})
	printReport(result.Errors, result.Warnings, result.Infos)

	if !result.IsValid() {
		return errors.New("active folder validation failed")
	}

	logger.Info().Str("root", argCheckRoot).Msg("active folder is packagable")

	return nil
}
