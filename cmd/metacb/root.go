// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	argConfig   string
	argLogLevel string
	argQuiet    bool

	currentConfig *Config
	logger        zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "metacb",
	Short:             "Package song resource bundles and verify meta.cb manifests",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&argConfig, "config", "c", "", "Configuration file")
	rootCmd.PersistentFlags().StringVar(&argLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&argQuiet, "quiet", "q", false, "Only log warnings and errors")
}

// setup loads configuration and builds the shared logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(argConfig)
	if err != nil {
		return err
	}
	currentConfig = conf

	level := conf.LogLevel
	if argLogLevel != "" {
		level = argLogLevel
	}
	if level == "" {
		level = zerolog.LevelInfoValue
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	if argQuiet {
		parsed = zerolog.WarnLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()

	return nil
}

// printReport writes findings and summary lines to stdout.
func printReport(errors []string, warnings []string, infos []string) {
	for _, line := range errors {
		fmt.Println("ERROR:", line)
	}
	for _, line := range warnings {
		fmt.Println("WARNING:", line)
	}
	for _, line := range infos {
		fmt.Println(line)
	}
}
