// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arktools/metacb"
)

var (
	argPackRoot            string
	argPackOut             string
	argPackBundleVersion   string
	argPackPreviousVersion string
	argPackAppVersion      string
	argPackExclude         []string
	argPackSkipCheck       bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Validate an active folder and write its meta.cb manifest",
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringVarP(&argPackRoot, "root", "r", "", "Active folder to package (required)")
	packCmd.Flags().StringVarP(&argPackOut, "out", "o", "", "Manifest output path (default <root>/meta.cb)")
	packCmd.Flags().StringVar(&argPackBundleVersion, "bundle-version", "", "Bundle version number")
	packCmd.Flags().StringVar(&argPackPreviousVersion, "previous-version", "", "Previous bundle version number")
	packCmd.Flags().StringVar(&argPackAppVersion, "app-version", "", "Application version number")
	packCmd.Flags().StringSliceVar(&argPackExclude, "exclude", nil, "Extra exclusion patterns")
	packCmd.Flags().BoolVar(&argPackSkipCheck, "skip-check", false, "Skip active folder validation before packaging")
	_ = packCmd.MarkFlagRequired("root")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	if !argPackSkipCheck {
		result := metacb.ValidateActiveFolder(argPackRoot, metacb.ValidateOptions{Logger: &logger})
		printReport(result.Errors, result.Warnings, result.Infos)
		if !result.IsValid() {
			return errors.New("active folder validation failed")
		}
	}

	outPath := argPackOut
	if outPath == "" {
		outPath = filepath.Join(argPackRoot, metacb.DefaultManifestName)
	}

	opts := metacb.GenerateOptions{
		Logger:          &logger,
		BundleVersion:   firstNonEmpty(argPackBundleVersion, currentConfig.BundleVersion),
		PreviousVersion: firstNonEmpty(argPackPreviousVersion, currentConfig.PreviousVersion),
		AppVersion:      firstNonEmpty(argPackAppVersion, currentConfig.AppVersion),
		Exclude:         append(currentConfig.Exclude, argPackExclude...),
	}

	manifest, err := metacb.Generate(argPackRoot, outPath, opts)
	if err != nil {
		return err
	}

	logger.Info().
		Str("uuid", manifest.UUID).
		Int("files", len(manifest.Added)).
		Msg("bundle packaged")

	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
