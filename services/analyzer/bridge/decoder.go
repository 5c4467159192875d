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
	"log/slog"
	"strconv"
)

// DecodedResponse is one analyze response with the sentinel-tagged derived
// metrics stripped out of the issue list.
type DecodedResponse struct {
	// Issues is the primary issue list, without sentinel entries.
	Issues []Issue

	// HighlightedSymbols is the encoded symbol-highlighting payload
	// carried by its sentinel issue. Empty when the sentinel was absent
	// or malformed.
	HighlightedSymbols json.RawMessage

	// CognitiveComplexity is the file's score carried by its sentinel
	// issue. Zero when the sentinel was absent or unparsable.
	CognitiveComplexity int
}

// DecodeResponse extracts the two derived metrics from a raw issue list.
//
// Description:
//
//	Scans the issue list for the symbol-highlighting sentinel and the
//	cognitive-complexity sentinel independently. For each, the first
//	match by scan order is removed and parsed; duplicates are left in
//	place untouched. A missing or malformed sentinel is never an error:
//	the documented default (empty payload, zero score) is substituted
//	and a diagnostic logged.
//
// Inputs:
//
//	issues - The raw issue list from one analyze call.
//	logger - Logger for sentinel diagnostics. If nil, uses slog.Default().
//
// Outputs:
//
//	DecodedResponse - The cleaned issue list plus both metrics.
func DecodeResponse(issues []Issue, logger *slog.Logger) DecodedResponse {
	if logger == nil {
		logger = slog.Default()
	}

	decoded := DecodedResponse{}

	remaining, sentinel := takeSentinel(issues, SymbolHighlightingRuleID)
	if sentinel == nil {
		logger.Debug("no symbol highlighting returned by worker")
	} else if !json.Valid([]byte(sentinel.Message)) {
		logger.Warn("malformed symbol highlighting payload, dropping it")
	} else {
		decoded.HighlightedSymbols = json.RawMessage(sentinel.Message)
	}

	remaining, sentinel = takeSentinel(remaining, CognitiveComplexityRuleID)
	if sentinel == nil {
		logger.Debug("no cognitive complexity returned by worker")
	} else if score, err := strconv.Atoi(sentinel.Message); err != nil {
		logger.Warn("unparsable cognitive complexity score",
			slog.String("value", sentinel.Message),
		)
	} else {
		decoded.CognitiveComplexity = score
	}

	decoded.Issues = remaining
	return decoded
}

// takeSentinel removes the first issue with the given rule identifier and
// returns the shortened list plus the removed issue, or nil when absent.
func takeSentinel(issues []Issue, ruleID string) ([]Issue, *Issue) {
	for i := range issues {
		if issues[i].RuleID == ruleID {
			sentinel := issues[i]
			remaining := make([]Issue, 0, len(issues)-1)
			remaining = append(remaining, issues[:i]...)
			remaining = append(remaining, issues[i+1:]...)
			return remaining, &sentinel
		}
	}
	return issues, nil
}
