// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package project

import (
	"context"
	"fmt"
	"log/slog"
)

// ConfigLoader parses one configuration file and returns its projection.
//
// Implementations may parse locally or delegate to the analysis worker.
// A load failure must be returned as an error; the Resolver treats it as
// a skipped configuration, not a fatal condition.
type ConfigLoader interface {
	LoadConfig(ctx context.Context, path string) (*ProjectConfig, error)
}

// Resolver flattens a configuration reference graph into a deduplicated,
// discovery-ordered list.
//
// Thread Safety: Safe for concurrent use.
type Resolver struct {
	loader ConfigLoader
	logger *slog.Logger
}

// ResolverOption configures the Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger. Defaults to slog.Default().
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver backed by the given loader.
func NewResolver(loader ConfigLoader, opts ...ResolverOption) (*Resolver, error) {
	if loader == nil {
		return nil, ErrNoLoader
	}
	r := &Resolver{
		loader: loader,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve loads the transitive closure of the root configuration paths.
//
// Description:
//
//	Traverses the reference graph breadth-first with a FIFO work queue
//	seeded from roots. Each path is loaded at most once; references are
//	appended to the tail of the queue in declaration order, so siblings
//	resolve before grandchildren. Diamonds are deduplicated and cycles
//	are absorbed by the processed set.
//
// Inputs:
//
//	ctx - Context for cancellation. Checked before each load.
//	roots - The root configuration paths, in priority order.
//
// Outputs:
//
//	[]*ProjectConfig - The resolved graph in discovery order.
//	[]SkippedConfig - Configurations that failed to load. Never fatal.
//	error - Non-nil only on context cancellation.
//
// Thread Safety: Safe for concurrent use.
func (r *Resolver) Resolve(ctx context.Context, roots []string) ([]*ProjectConfig, []SkippedConfig, error) {
	if ctx == nil {
		return nil, nil, fmt.Errorf("%w: ctx must not be nil", ErrInvalidInput)
	}

	var (
		graph   []*ProjectConfig
		skipped []SkippedConfig
	)

	queue := make([]string, 0, len(roots))
	queue = append(queue, roots...)
	processed := make(map[string]bool, len(roots))

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return graph, skipped, err
		}

		path := queue[0]
		queue = queue[1:]
		if processed[path] {
			continue
		}
		processed[path] = true

		config, err := r.loader.LoadConfig(ctx, path)
		if err != nil {
			skipped = append(skipped, SkippedConfig{Path: path, Err: err})
			r.logger.Warn("skipping unparsable config",
				slog.String("path", path),
				slog.Any("error", err),
			)
			continue
		}

		graph = append(graph, config)
		if len(config.References) > 0 {
			r.logger.Debug("adding referenced configs",
				slog.String("path", path),
				slog.Int("references", len(config.References)),
			)
			queue = append(queue, config.References...)
		}
	}

	r.logger.Debug("config graph resolved",
		slog.Int("configs", len(graph)),
		slog.Int("skipped", len(skipped)),
	)
	return graph, skipped, nil
}
