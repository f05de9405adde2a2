// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("bundle_version: 2.1.0\napp_version: 3.0.0\nexclude:\n  - \"*.tmp\"\nlog_level: debug\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	conf, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if conf.BundleVersion != "2.1.0" || conf.AppVersion != "3.0.0" {
		t.Fatalf("versions=%q/%q, want 2.1.0/3.0.0", conf.BundleVersion, conf.AppVersion)
	}
	if len(conf.Exclude) != 1 || conf.Exclude[0] != "*.tmp" {
		t.Fatalf("exclude=%v, want [*.tmp]", conf.Exclude)
	}
	if conf.LogLevel != "debug" {
		t.Fatalf("log level=%q, want debug", conf.LogLevel)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	t.Parallel()

	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for explicit missing config")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	if got := firstNonEmpty("", "a", "b"); got != "a" {
		t.Fatalf("firstNonEmpty=%q, want a", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("firstNonEmpty=%q, want empty", got)
	}
}
