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
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

const (
	defaultStartTimeout = 30 * time.Second
	startProbeInterval  = 100 * time.Millisecond
	defaultCloseWait    = 10 * time.Second
)

// Process owns the lifetime of a locally spawned worker.
//
// Most deployments dial an already-running worker with NewClient directly;
// Process is for the CLI case where the orchestrator also launches the
// sidecar. Exactly one Process is live per run.
type Process struct {
	cmd       *exec.Cmd
	client    *Client
	logger    *slog.Logger
	closeWait time.Duration
}

// StartProcess launches the worker command and waits for it to answer the
// liveness probe.
//
// Inputs:
//
//	ctx - Bounds both the spawn and the whole worker lifetime.
//	command - The worker argv, e.g. ["node", "worker.js", "--port", "9229"].
//	baseURL - Where the worker will listen.
//	logger - Logger for lifecycle events. If nil, uses slog.Default().
//	opts - Extra options for the connected Client.
//
// Outputs:
//
//	*Process - The running worker with a connected Client.
//	error - ErrStartupTimeout if the worker never answered the probe.
func StartProcess(ctx context.Context, command []string, baseURL string, logger *slog.Logger, opts ...ClientOption) (*Process, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("%w: command must not be empty", ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := NewClient(baseURL, append([]ClientOption{WithClientLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting worker: %w", err)
	}
	logger.Info("worker process started",
		slog.String("command", command[0]),
		slog.Int("pid", cmd.Process.Pid),
	)

	deadline := time.Now().Add(defaultStartTimeout)
	for !client.IsAlive(ctx) {
		if time.Now().After(deadline) {
			cmd.Process.Kill()
			cmd.Wait()
			return nil, fmt.Errorf("%w: after %s", ErrStartupTimeout, defaultStartTimeout)
		}
		select {
		case <-ctx.Done():
			cmd.Process.Kill()
			cmd.Wait()
			return nil, ctx.Err()
		case <-time.After(startProbeInterval):
		}
	}

	return &Process{cmd: cmd, client: client, logger: logger, closeWait: defaultCloseWait}, nil
}

// Client returns the channel to the running worker.
func (p *Process) Client() *Client {
	return p.client
}

// Close requests a clean worker shutdown, then reaps the process. The
// close call is best effort; a worker that already died is not an error.
// A worker that acknowledges the shutdown but never exits is killed after
// a bounded wait, so Close always returns.
func (p *Process) Close(ctx context.Context) error {
	if err := p.client.Close(ctx); err != nil {
		p.logger.Debug("close request failed, killing worker", slog.Any("error", err))
		p.cmd.Process.Kill()
	}

	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			p.logger.Debug("worker exited with error", slog.Any("error", err))
		}
	case <-time.After(p.closeWait):
		p.logger.Warn("worker did not exit after close request, killing it")
		p.cmd.Process.Kill()
		<-done
	case <-ctx.Done():
		p.cmd.Process.Kill()
		<-done
	}

	p.logger.Info("worker process stopped")
	return nil
}
