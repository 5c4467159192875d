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
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ProgressReport emits a heartbeat at a fixed interval while a run is in
// flight. It is purely observational: it never blocks and is never blocked
// by the analysis sequence.
//
// Thread Safety: Safe for concurrent use. Start must be called once.
type ProgressReport struct {
	total    int64
	done     atomic.Int64
	interval time.Duration
	logger   *slog.Logger

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewProgressReport creates a heartbeat over total files.
func NewProgressReport(total int, interval time.Duration, logger *slog.Logger) *ProgressReport {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressReport{
		total:    int64(total),
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the heartbeat goroutine.
func (p *ProgressReport) Start() {
	p.wg.Add(1)
	go p.run()
}

// FileDone records one completed file.
func (p *ProgressReport) FileDone() {
	p.done.Add(1)
}

// Stop ends the heartbeat after a successful run and logs the final count.
func (p *ProgressReport) Stop() {
	close(p.stopCh)
	p.wg.Wait()
	p.logger.Info("analysis progress",
		slog.Int64("analyzed", p.done.Load()),
		slog.Int64("total", p.total),
	)
}

// Cancel ends the heartbeat without a final report, for truncated runs.
func (p *ProgressReport) Cancel() {
	close(p.stopCh)
	p.wg.Wait()
}

func (p *ProgressReport) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.logger.Info("analysis progress",
				slog.Int64("analyzed", p.done.Load()),
				slog.Int64("total", p.total),
			)
		}
	}
}
