// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph resolution.
var (
	// ErrInvalidInput is returned when a required argument is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoLoader is returned when a Resolver is constructed without a
	// configuration loader.
	ErrNoLoader = errors.New("config loader must not be nil")
)

// SkippedConfig records a configuration file that could not be loaded.
//
// An unparsable configuration is a local, non-fatal condition: it is
// reported to the caller and resolution continues with the remaining
// paths.
type SkippedConfig struct {
	// Path is the configuration file that failed to load.
	Path string `json:"path"`

	// Err is the underlying load failure.
	Err error `json:"error"`
}

// Error implements the error interface.
func (s SkippedConfig) Error() string {
	return fmt.Sprintf("skipped config %s: %v", s.Path, s.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (s SkippedConfig) Unwrap() error {
	return s.Err
}
