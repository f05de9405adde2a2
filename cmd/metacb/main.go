// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

// Command metacb packages song resource bundles and verifies meta.cb
// manifests against active folders.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
