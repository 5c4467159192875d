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
	"errors"
)

// Sentinel errors for run control flow.
var (
	// ErrInvalidInput is returned when a required argument is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWorkerLost is returned when the worker stopped answering the
	// liveness probe mid-run. The run terminates: no retry, no partial
	// continuation, because a dead worker cannot guarantee any further
	// result is trustworthy.
	ErrWorkerLost = errors.New("analysis worker is not answering")
)
