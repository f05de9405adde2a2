// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds tool defaults loadable from a YAML file. Flags override
// any value set here.
type Config struct {
	// BundleVersion is the default versionNumber for pack.
	BundleVersion string `yaml:"bundle_version,omitempty"`
	// AppVersion is the default applicationVersionNumber for pack.
	AppVersion string `yaml:"app_version,omitempty"`
	// PreviousVersion is the default previousVersionNumber for pack.
	PreviousVersion string `yaml:"previous_version,omitempty"`
	// Exclude are extra collection exclusion patterns.
	Exclude []string `yaml:"exclude,omitempty"`
	// LogLevel is the default log level.
	LogLevel string `yaml:"log_level,omitempty"`
}

// defaultConfigPath returns the conventional per-user config location.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "metacb", "config.yml")
}

// loadConfig reads a YAML config file. An empty path falls back to the
// default location, and a missing default is not an error.
func loadConfig(path string) (*Config, error) {
	usedDefault := false
	if path == "" {
		path = defaultConfigPath()
		usedDefault = true
	}

	conf := new(Config)
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && usedDefault {
			return conf, nil
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return conf, nil
}
