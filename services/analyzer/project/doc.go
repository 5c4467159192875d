// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package project resolves a project's configuration-file graph and assigns
// source files to the configuration that governs them.
//
// Project configurations reference other configurations, forming a graph that
// may contain diamonds and (in broken projects) cycles. The Resolver flattens
// that graph into a deduplicated, breadth-first discovery-ordered list. The
// Mapper then partitions the input file set into one FileBatch per resolved
// configuration, plus a reserved unmatched batch for files no configuration
// claims.
//
// Discovery order is an observable contract: the scheduler analyzes batches
// in exactly the order the Resolver produced them, and progress reporting
// follows the same order. Callers must not re-sort the resolved graph.
//
// # Thread Safety
//
// Resolver is safe for concurrent use. ProjectConfig and FileBatch values are
// immutable after creation and safe to share.
package project
