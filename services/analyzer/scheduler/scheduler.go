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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/AleutianBridge/services/analyzer/bridge"
	"github.com/AleutianAI/AleutianBridge/services/analyzer/project"
)

const defaultProgressInterval = 10 * time.Second

// Worker is the call surface the scheduler needs from the worker channel.
//
// *bridge.Client satisfies it. Calls are strictly sequential: the scheduler
// is the only component issuing requests while a run holds the channel.
type Worker interface {
	// IsAlive is a cheap liveness probe with no side effects.
	IsAlive(ctx context.Context) bool

	// Analyze exchanges one request/response pair for one file. A non-nil
	// error is a transport failure, distinct from a worker-reported
	// parsing error inside the response.
	Analyze(ctx context.Context, request *bridge.AnalysisRequest) (*bridge.AnalysisResponse, error)

	// AdvanceContext signals that a new configuration's batch is starting.
	AdvanceContext(ctx context.Context) error
}

// Scheduler drives one analysis run over the resolved file batches.
//
// Thread Safety: Safe for concurrent use, but the worker channel admits
// only one run at a time; callers must not share a Worker across
// concurrent runs.
type Scheduler struct {
	worker               Worker
	logger               *slog.Logger
	progressInterval     time.Duration
	ignoreHeaderComments bool
}

// SchedulerOption configures the Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithProgressInterval sets the heartbeat interval.
func WithProgressInterval(interval time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.progressInterval = interval
	}
}

// WithIgnoreHeaderComments makes the worker skip license header comments
// when evaluating comment-related rules.
func WithIgnoreHeaderComments(ignore bool) SchedulerOption {
	return func(s *Scheduler) {
		s.ignoreHeaderComments = ignore
	}
}

// NewScheduler creates a scheduler over the given worker channel.
func NewScheduler(worker Worker, opts ...SchedulerOption) (*Scheduler, error) {
	if worker == nil {
		return nil, fmt.Errorf("%w: worker must not be nil", ErrInvalidInput)
	}
	s := &Scheduler{
		worker:           worker,
		logger:           slog.Default(),
		progressInterval: defaultProgressInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run analyzes every batch in configuration discovery order.
//
// Description:
//
//	For each configuration batch the scheduler advances the worker's
//	per-project context, then streams the batch's files one at a time.
//	Cancellation and liveness are polled before every batch and every
//	file; cancellation arriving while a call is in flight aborts that
//	call and ends the run cleanly, without a result for the aborted
//	file. The unmatched batch is reported and skipped entirely. An
//	empty configuration graph short-circuits to OutcomeSkipped with no
//	worker call, so a failed discovery is never presented as a clean
//	zero-issue run.
//
// Inputs:
//
//	ctx - Carries the external cancellation signal.
//	batches - Output of project.MapFiles, in discovery order.
//
// Outputs:
//
//	*RunResult - One FileResult per processed file plus the outcome.
//	  Always non-nil, including on worker loss.
//	error - ErrWorkerLost when the worker died mid-run; nil otherwise.
//	  Cancellation is a clean outcome, not an error.
func (s *Scheduler) Run(ctx context.Context, batches []project.FileBatch) (*RunResult, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: ctx must not be nil", ErrInvalidInput)
	}

	start := time.Now()
	result := &RunResult{
		RunID: uuid.NewString()[:12],
	}
	logger := s.logger.With(slog.String("run_id", result.RunID))

	total := 0
	configs := 0
	for _, batch := range batches {
		if batch.Unmatched() {
			result.UnmatchedFiles = len(batch.Files)
			continue
		}
		configs++
		total += len(batch.Files)
	}

	finish := func(outcome Outcome) *RunResult {
		result.Outcome = outcome
		result.Duration = time.Since(start)
		runsTotal.WithLabelValues(outcome.String()).Inc()
		runDuration.Observe(result.Duration.Seconds())
		unmatchedFiles.Observe(float64(result.UnmatchedFiles))
		return result
	}

	if configs == 0 {
		logger.Warn("no usable config found, analysis skipped")
		return finish(OutcomeSkipped), nil
	}

	logger.Info("starting analysis",
		slog.Int("configs", configs),
		slog.Int("files", total),
		slog.Int("unmatched", result.UnmatchedFiles),
	)

	progress := NewProgressReport(total, s.progressInterval, logger)
	progress.Start()
	success := false
	defer func() {
		if success {
			progress.Stop()
		} else {
			progress.Cancel()
		}
	}()

	// Liveness probes run on a detached context: a probe issued on the
	// cancelled run context would always fail, and a failed probe there
	// cannot distinguish a dead worker from a cancelled run.
	probeCtx := context.WithoutCancel(ctx)

	cancelled := func() *RunResult {
		logger.Info("analysis cancelled",
			slog.Int("analyzed", len(result.Files)),
			slog.Int("total", total),
		)
		return finish(OutcomeCancelled)
	}

	for _, batch := range batches {
		if batch.Unmatched() {
			if len(batch.Files) > 0 {
				logger.Info("skipping files with no owning config",
					slog.Int("count", len(batch.Files)),
				)
			}
			continue
		}
		if ctx.Err() != nil {
			return cancelled(), nil
		}

		logger.Info("analyzing batch",
			slog.String("config", batch.Config.Path),
			slog.Int("files", len(batch.Files)),
		)
		if err := s.worker.AdvanceContext(ctx); err != nil {
			if ctx.Err() != nil {
				return cancelled(), nil
			}
			if !s.worker.IsAlive(probeCtx) {
				logger.Error("worker lost while advancing context")
				return finish(OutcomeWorkerLost), ErrWorkerLost
			}
			logger.Warn("context advance failed, worker still alive",
				slog.Any("error", err),
			)
		}

		for _, file := range batch.Files {
			if ctx.Err() != nil {
				return cancelled(), nil
			}
			if !s.worker.IsAlive(probeCtx) {
				logger.Error("worker is not answering, aborting run",
					slog.Int("analyzed", len(result.Files)),
				)
				return finish(OutcomeWorkerLost), ErrWorkerLost
			}

			fileResult, err := s.analyzeFile(ctx, probeCtx, logger, batch.Config, file)
			switch {
			case errors.Is(err, ErrWorkerLost):
				return finish(OutcomeWorkerLost), ErrWorkerLost
			case err != nil:
				return cancelled(), nil
			}
			result.Files = append(result.Files, fileResult)
			filesAnalyzedTotal.WithLabelValues(fileResult.Status.String()).Inc()
			progress.FileDone()
		}
	}

	success = true
	return finish(OutcomeCompleted), nil
}

// analyzeFile exchanges one request/response pair and decodes the result.
//
// A nil error means a result was recorded, possibly degraded. ErrWorkerLost
// means the transport failed and the liveness probe (on probeCtx, detached
// from cancellation) confirmed the worker is gone. A context error means
// cancellation aborted the in-flight call; no result is recorded for it.
func (s *Scheduler) analyzeFile(ctx, probeCtx context.Context, logger *slog.Logger, config *project.ProjectConfig, file project.SourceFile) (FileResult, error) {
	request := &bridge.AnalysisRequest{
		FilePath:             file.Path,
		FileContent:          file.Content,
		IgnoreHeaderComments: s.ignoreHeaderComments,
		ConfigPaths:          []string{config.Path},
	}

	response, err := s.worker.Analyze(ctx, request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return FileResult{}, ctxErr
		}
		if !s.worker.IsAlive(probeCtx) {
			logger.Error("worker lost during analyze call",
				slog.String("file", file.Path),
			)
			return FileResult{}, ErrWorkerLost
		}
		// Worker survived; only this file's result is lost.
		logger.Warn("analyze call failed for one file",
			slog.String("file", file.Path),
			slog.Any("error", err),
		)
		return FileResult{Path: file.Path, Status: StatusTransportFailed, Err: err}, nil
	}

	if response.ParsingError != nil {
		logger.Debug("worker reported parsing error",
			slog.String("file", file.Path),
			slog.String("code", string(response.ParsingError.Code)),
		)
		return FileResult{
			Path:         file.Path,
			Status:       StatusParseFailed,
			ParsingError: response.ParsingError,
		}, nil
	}

	decoded := bridge.DecodeResponse(response.Issues, logger)
	return FileResult{
		Path:                file.Path,
		Status:              StatusOK,
		Issues:              decoded.Issues,
		HighlightedSymbols:  decoded.HighlightedSymbols,
		CognitiveComplexity: decoded.CognitiveComplexity,
	}, nil
}
