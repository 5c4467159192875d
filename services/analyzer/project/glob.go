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
	"path/filepath"
	"strings"
)

// Default glob patterns for analyzable sources.
var (
	// DefaultIncludes covers the JavaScript and TypeScript file types the
	// worker understands.
	DefaultIncludes = []string{
		"**/*.js",
		"**/*.jsx",
		"**/*.mjs",
		"**/*.cjs",
		"**/*.ts",
		"**/*.tsx",
	}

	// DefaultExcludes removes dependency and build output directories.
	DefaultExcludes = []string{
		"node_modules/**",
		"bower_components/**",
		".git/**",
		"**/dist/**",
		"**/build/**",
	}
)

// GlobMatcher matches file paths against include/exclude patterns.
//
// Patterns use glob syntax with ** for recursive matching:
//   - *  matches any sequence of non-separator characters
//   - ** matches zero or more whole path segments
//   - ?  matches a single non-separator character
//   - [abc] matches one of the bracketed characters
//
// Excludes always win over includes. An empty include list matches
// every path that is not excluded.
//
// Thread Safety: Safe for concurrent use after creation.
type GlobMatcher struct {
	includes []string
	excludes []string
}

// NewGlobMatcher creates a matcher with the given include and exclude patterns.
func NewGlobMatcher(includes, excludes []string) *GlobMatcher {
	return &GlobMatcher{includes: includes, excludes: excludes}
}

// Match returns true if the path is covered by the includes and not
// removed by the excludes. Paths are normalized to forward slashes.
func (m *GlobMatcher) Match(path string) bool {
	path = filepath.ToSlash(path)

	for _, pattern := range m.excludes {
		if matchPattern(pattern, path) {
			return false
		}
	}

	if len(m.includes) == 0 {
		return true
	}

	for _, pattern := range m.includes {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

// matchPattern matches one slash-separated path against one glob pattern,
// segment by segment, so that * never crosses a separator and ** spans
// zero or more segments.
func matchPattern(pattern, path string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pattern, path []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			// ** swallows zero or more leading path segments.
			if matchSegments(pattern[1:], path) {
				return true
			}
			if len(path) == 0 {
				return false
			}
			path = path[1:]
			continue
		}
		if len(path) == 0 {
			return false
		}
		ok, err := filepath.Match(pattern[0], path[0])
		if err != nil || !ok {
			return false
		}
		pattern = pattern[1:]
		path = path[1:]
	}
	return len(path) == 0
}
