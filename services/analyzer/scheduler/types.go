// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package scheduler

import (
	"encoding/json"
	"time"

	"github.com/AleutianAI/AleutianBridge/services/analyzer/bridge"
)

// =============================================================================
// PER-FILE RESULTS
// =============================================================================

// FileStatus discriminates the three ways a file's analysis can end.
type FileStatus int

const (
	// StatusOK means the worker answered with issues and metrics.
	StatusOK FileStatus = iota

	// StatusParseFailed means the worker answered, but could not parse
	// the file. The ParsingError field carries the detail.
	StatusParseFailed

	// StatusTransportFailed means the analyze call never completed. The
	// Err field carries the transport failure. Only this file's result
	// is lost; the run continued because the worker stayed alive.
	StatusTransportFailed
)

// String returns the string representation of the status.
func (s FileStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusParseFailed:
		return "parse_failed"
	case StatusTransportFailed:
		return "transport_failed"
	default:
		return "unknown"
	}
}

// FileResult is the aggregated outcome for one analyzed file.
//
// Exactly one of the detail groups is meaningful, selected by Status.
type FileResult struct {
	// Path identifies the file.
	Path string

	// Status discriminates the result variant.
	Status FileStatus

	// Issues is the primary issue list, sentinels already stripped.
	Issues []bridge.Issue

	// HighlightedSymbols is the derived symbol-highlighting payload.
	HighlightedSymbols json.RawMessage

	// CognitiveComplexity is the derived complexity score.
	CognitiveComplexity int

	// ParsingError is set when Status is StatusParseFailed.
	ParsingError *bridge.ParsingError

	// Err is set when Status is StatusTransportFailed.
	Err error
}

// =============================================================================
// RUN RESULTS
// =============================================================================

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeCompleted means every batch was exhausted.
	OutcomeCompleted Outcome = iota

	// OutcomeCancelled means the caller's cancellation signal stopped the
	// run. Not an error; processed files keep their results.
	OutcomeCancelled

	// OutcomeWorkerLost means the liveness probe failed mid-run. Fatal;
	// all unprocessed files are left unanalyzed.
	OutcomeWorkerLost

	// OutcomeSkipped means no usable configuration was found, so no
	// worker call was made at all. Distinct from a completed run with
	// zero issues.
	OutcomeSkipped
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeWorkerLost:
		return "worker_lost"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// RunResult aggregates one orchestration run.
//
// When the outcome truncated the run, files never reached are simply
// absent from Files, not reported as failed.
type RunResult struct {
	// RunID identifies the run in logs and metrics.
	RunID string

	// Outcome is the terminal state.
	Outcome Outcome

	// Files holds one result per processed file, in analysis order.
	Files []FileResult

	// UnmatchedFiles counts files excluded for lack of an owning config.
	UnmatchedFiles int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Completed reports whether every submitted file was processed.
func (r *RunResult) Completed() bool {
	return r.Outcome == OutcomeCompleted
}
