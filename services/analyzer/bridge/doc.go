// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package bridge is the transport to the external analysis worker.
//
// The worker is a long-lived sidecar process that parses source files and
// evaluates lint rules. This package exposes a narrow, strictly sequential
// call surface over HTTP/JSON: initialize the linter, analyze one file,
// advance the per-project context, load a configuration file, and probe
// liveness. The channel never has more than one outstanding request; the
// worker relies on one-at-a-time, in-order delivery for consistent
// per-project caching.
//
// Two derived metrics ride inside the per-file issue list under reserved
// rule identifiers (see decoder.go). DecodeResponse locates and strips
// exactly one sentinel entry per metric before the issue list is final.
//
// Transport failures (the call never completed) and analysis failures (the
// worker answered with a parsing error) are distinct: the former wrap
// ErrTransport, the latter arrive as a normal AnalysisResponse carrying a
// ParsingError.
package bridge
