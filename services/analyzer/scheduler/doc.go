// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package scheduler drives a whole-project analysis run.
//
// The scheduler is the only component with authority over ordering and
// failure escalation. It walks the file batches in configuration discovery
// order, exchanges one request/response pair per file with the worker, and
// polls cancellation and worker liveness before every file. A single
// coordinating goroutine drives the run; the only concurrency is the
// progress heartbeat, which observes the run without affecting it.
//
// Failure policy: a transport failure on one file degrades only that file
// as long as the worker still answers the liveness probe. A dead worker is
// fatal for the remainder of the run, with no retry, because no further
// result from it is trustworthy. Cancellation is a clean early exit, not
// an error; files already processed keep their results.
package scheduler
