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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for analysis runs.
var (
	filesAnalyzedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_files_total",
		Help: "Files processed by per-file status",
	}, []string{"status"})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_runs_total",
		Help: "Analysis runs by terminal outcome",
	}, []string{"outcome"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_run_duration_seconds",
		Help:    "Wall-clock duration of whole analysis runs",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	})

	unmatchedFiles = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_unmatched_files",
		Help:    "Files excluded per run for lack of an owning config",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
	})
)
