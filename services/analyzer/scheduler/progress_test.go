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
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressReport_StopLogsFinalCount(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := NewProgressReport(3, time.Hour, logger)
	p.Start()
	p.FileDone()
	p.FileDone()
	p.Stop()

	out := buf.String()
	assert.Contains(t, out, "analysis progress")
	assert.Contains(t, out, "analyzed=2")
	assert.Contains(t, out, "total=3")
}

func TestProgressReport_CancelIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := NewProgressReport(3, time.Hour, logger)
	p.Start()
	p.FileDone()
	p.Cancel()

	assert.False(t, strings.Contains(buf.String(), "analysis progress"),
		"no final report for a truncated run")
}

func TestProgressReport_HeartbeatTicks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := NewProgressReport(10, 5*time.Millisecond, logger)
	p.Start()
	time.Sleep(30 * time.Millisecond)
	p.Cancel()

	assert.Contains(t, buf.String(), "analysis progress",
		"heartbeat fires independently of per-file completion")
}
