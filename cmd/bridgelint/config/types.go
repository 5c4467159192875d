// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the bridgelint analysis profile.
//
// The profile is a YAML file describing the worker to drive and the
// linting configuration to initialize it with. It is loaded into an
// explicit value passed to the commands, never into package-level state.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML scalars like "90s" or "2m" via time.ParseDuration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Profile is the full analysis profile.
type Profile struct {
	Worker   WorkerConfig   `yaml:"worker"`
	Linter   LinterConfig   `yaml:"linter"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// WorkerConfig describes the analysis worker sidecar.
type WorkerConfig struct {
	// URL is where the worker listens, e.g. http://localhost:9229.
	URL string `yaml:"url"`

	// Command, when non-empty, makes bridgelint spawn the worker itself
	// instead of dialing an already-running one.
	Command []string `yaml:"command"`

	// CallTimeout bounds each per-file worker call.
	CallTimeout Duration `yaml:"call_timeout"`
}

// RuleConfig is one active rule and its configuration array, passed to
// the worker verbatim at session initialization.
type RuleConfig struct {
	Key            string `yaml:"key"`
	Configurations []any  `yaml:"configurations"`
}

// LinterConfig is the worker's session configuration.
type LinterConfig struct {
	Rules        []RuleConfig `yaml:"rules"`
	Environments []string     `yaml:"environments"`
	Globals      []string     `yaml:"globals"`
}

// AnalysisConfig controls file selection and per-file options.
type AnalysisConfig struct {
	// ConfigRoots are the root configuration files to resolve. Relative
	// paths are resolved against the project root.
	ConfigRoots []string `yaml:"config_roots"`

	// Includes and Excludes select the source files to submit.
	// Empty means the built-in JavaScript/TypeScript defaults.
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`

	// IgnoreHeaderComments skips license headers when evaluating
	// comment-related rules.
	IgnoreHeaderComments bool `yaml:"ignore_header_comments"`

	// SendFileContent preloads file content into each request instead of
	// letting the worker read from disk.
	SendFileContent bool `yaml:"send_file_content"`
}
