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
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for worker calls.
var (
	tracer = otel.Tracer("aleutian.bridge")
	meter  = otel.Meter("aleutian.bridge")
)

// Metrics for worker calls.
var (
	callLatency metric.Float64Histogram
	callTotal   metric.Int64Counter
	issuesSeen  metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		callLatency, err = meter.Float64Histogram(
			"bridge_call_duration_seconds",
			metric.WithDescription("Duration of worker calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		callTotal, err = meter.Int64Counter(
			"bridge_call_total",
			metric.WithDescription("Total number of worker calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		issuesSeen, err = meter.Int64Histogram(
			"bridge_issues_per_file",
			metric.WithDescription("Number of issues returned per analyzed file"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startCallSpan creates a span for one worker call.
func startCallSpan(ctx context.Context, endpoint string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "bridge.Call",
		trace.WithAttributes(
			attribute.String("bridge.endpoint", endpoint),
		),
	)
}

// recordCallMetrics records metrics for one worker call.
func recordCallMetrics(ctx context.Context, endpoint string, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.Bool("success", success),
	)
	callLatency.Record(ctx, duration.Seconds(), attrs)
	callTotal.Add(ctx, 1, attrs)
}

// recordIssueCount records the issue count of one analyzed file.
func recordIssueCount(ctx context.Context, count int) {
	if err := initMetrics(); err != nil {
		return
	}
	issuesSeen.Record(ctx, int64(count))
}
