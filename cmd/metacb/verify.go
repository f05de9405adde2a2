// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/arktools/metacb"
)

var (
	argVerifyManifest string
	argVerifyRoot     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Recompute every hash in a manifest against a directory",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&argVerifyManifest, "manifest", "m", "", "Path to meta.cb manifest (required)")
	verifyCmd.Flags().StringVarP(&argVerifyRoot, "root", "r", "", "Bundle root directory (required)")
	_ = verifyCmd.MarkFlagRequired("manifest")
	_ = verifyCmd.MarkFlagRequired("root")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	result := metacb.Verify(argVerifyManifest, argVerifyRoot, metacb.VerifyOptions{Logger: &logger})
	printReport(result.Errors, result.Warnings, result.Infos)

	if !result.IsValid() {
		return errors.New("bundle verification failed")
	}

	return nil
}
