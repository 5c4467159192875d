// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bridge

import (
	"encoding/json"
)

// =============================================================================
// RESERVED RULE IDENTIFIERS
// =============================================================================

// Reserved rule identifiers used to smuggle derived metrics inside the
// issue list. These are never user-visible rule keys and must not collide
// with real rule identifiers.
const (
	// SymbolHighlightingRuleID tags the issue whose message carries the
	// encoded symbol-highlighting payload.
	SymbolHighlightingRuleID = "internal-symbol-highlighting"

	// CognitiveComplexityRuleID tags the issue whose message carries the
	// file's cognitive complexity score.
	CognitiveComplexityRuleID = "internal-cognitive-complexity"
)

// =============================================================================
// SESSION SETUP
// =============================================================================

// Rule is one active lint rule and its configuration, sent to the worker
// at session initialization.
type Rule struct {
	Key            string `json:"key"`
	Configurations []any  `json:"configurations"`
}

// initLinterRequest is the session setup payload.
type initLinterRequest struct {
	Rules        []Rule   `json:"rules"`
	Environments []string `json:"environments"`
	Globals      []string `json:"globals"`
}

// =============================================================================
// PER-FILE ANALYSIS
// =============================================================================

// AnalysisRequest is the wire-level unit sent per file.
//
// A nil FileContent instructs the worker to read the file from disk itself.
type AnalysisRequest struct {
	FilePath             string   `json:"filePath"`
	FileContent          *string  `json:"fileContent"`
	IgnoreHeaderComments bool     `json:"ignoreHeaderComments"`
	ConfigPaths          []string `json:"configPaths"`
}

// AnalysisResponse is the worker's answer for one file.
//
// Highlights, HighlightedSymbols, Metrics and CpdTokens are opaque to this
// layer and round-tripped as encoded JSON.
type AnalysisResponse struct {
	ParsingError       *ParsingError   `json:"parsingError,omitempty"`
	Issues             []Issue         `json:"issues"`
	Highlights         json.RawMessage `json:"highlights,omitempty"`
	HighlightedSymbols json.RawMessage `json:"highlightedSymbols,omitempty"`
	Metrics            json.RawMessage `json:"metrics,omitempty"`
	CpdTokens          json.RawMessage `json:"cpdTokens,omitempty"`
}

// ParsingErrorCode classifies why the worker could not parse a file.
type ParsingErrorCode string

const (
	ParsingErrorGeneral               ParsingErrorCode = "GENERAL_ERROR"
	ParsingErrorParsing               ParsingErrorCode = "PARSING"
	ParsingErrorMissingTypeScript     ParsingErrorCode = "MISSING_TYPESCRIPT"
	ParsingErrorUnsupportedTypeScript ParsingErrorCode = "UNSUPPORTED_TYPESCRIPT"
)

// ParsingError is a per-file failure reported by the worker. It downgrades
// that file's result; it does not affect other files.
type ParsingError struct {
	Line    int              `json:"line,omitempty"`
	Message string           `json:"message"`
	Code    ParsingErrorCode `json:"code"`
}

// Issue is one diagnostic reported by the worker. Plain value; positions
// are 1-based.
type Issue struct {
	Line               int             `json:"line"`
	Column             int             `json:"column"`
	EndLine            *int            `json:"endLine,omitempty"`
	EndColumn          *int            `json:"endColumn,omitempty"`
	RuleID             string          `json:"ruleId"`
	Message            string          `json:"message"`
	Cost               *float64        `json:"cost,omitempty"`
	SecondaryLocations []IssueLocation `json:"secondaryLocations"`
}

// IssueLocation is a secondary span attached to an issue.
type IssueLocation struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Message   string `json:"message,omitempty"`
}

// =============================================================================
// CONFIG LOADING
// =============================================================================

// loadConfigRequest asks the worker to parse one configuration file.
type loadConfigRequest struct {
	ConfigPath string `json:"configPath"`
}

// configResponse is the worker's minimal projection of a configuration
// file: its member files and its references. Error is set when the file
// could not be parsed.
type configResponse struct {
	Filename          string   `json:"filename"`
	Files             []string `json:"files"`
	ProjectReferences []string `json:"projectReferences"`
	Error             string   `json:"error,omitempty"`
}
