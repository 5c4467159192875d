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
)

// =============================================================================
// SOURCE FILES
// =============================================================================

// Dialect identifies the language variant of a source file.
type Dialect string

const (
	// DialectJavaScript marks plain JavaScript sources.
	DialectJavaScript Dialect = "js"

	// DialectTypeScript marks TypeScript sources, which require a resolved
	// configuration for type-aware analysis.
	DialectTypeScript Dialect = "ts"
)

// DialectForPath infers the dialect from the file extension. Unknown
// extensions fall back to JavaScript, the worker's most permissive parser.
func DialectForPath(path string) Dialect {
	switch filepath.Ext(path) {
	case ".ts", ".tsx", ".mts", ".cts":
		return DialectTypeScript
	default:
		return DialectJavaScript
	}
}

// SourceFile is one input file submitted for analysis.
//
// Content is optional: when nil, the worker reads the file from disk itself.
// A SourceFile is immutable once constructed; the caller owns it for the
// whole run.
type SourceFile struct {
	// Path is the absolute path identifying the file.
	Path string

	// Content is the pre-loaded file content, or nil to let the worker
	// read from disk.
	Content *string

	// Dialect is the language variant of the file.
	Dialect Dialect
}

// =============================================================================
// PROJECT CONFIG
// =============================================================================

// ProjectConfig is one resolved configuration file.
//
// Membership is decided either by an explicit member file list (as returned
// by the worker when it parses the configuration) or, when no explicit list
// is present, by include/exclude globs.
//
// Thread Safety: Immutable after creation.
type ProjectConfig struct {
	// Path is the location of the configuration file.
	Path string

	// Files are the explicit member files, normalized to slash-separated
	// absolute paths. Takes precedence over globs when non-empty.
	Files []string

	// Includes are member glob patterns, in declaration order.
	Includes []string

	// Excludes are glob patterns removed from membership.
	Excludes []string

	// References are paths to other configurations, in declaration order.
	References []string
}

// Claims reports whether the configuration governs the given file path.
//
// An explicit member list wins over globs. A configuration declaring neither
// members nor include globs claims nothing, so an empty config never absorbs
// the whole project by accident.
func (c *ProjectConfig) Claims(path string) bool {
	if len(c.Files) > 0 {
		norm := filepath.ToSlash(path)
		for _, f := range c.Files {
			if f == norm {
				return true
			}
		}
		return false
	}
	if len(c.Includes) == 0 {
		return false
	}
	return NewGlobMatcher(c.Includes, c.Excludes).Match(path)
}

// =============================================================================
// FILE BATCHES
// =============================================================================

// FileBatch pairs a resolved configuration with the files it governs.
//
// A nil Config marks the reserved unmatched batch: files no configuration
// claimed. The unmatched batch is reported and excluded from analysis.
type FileBatch struct {
	Config *ProjectConfig
	Files  []SourceFile
}

// Unmatched reports whether this is the reserved unmatched batch.
func (b FileBatch) Unmatched() bool {
	return b.Config == nil
}
