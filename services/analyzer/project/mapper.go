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
	"log/slog"
)

// MapFiles partitions files into one FileBatch per configuration, in graph
// discovery order, plus the reserved unmatched batch last.
//
// Description:
//
//	Each file is assigned to the first configuration in discovery order
//	that claims it (first-match-wins, not best-match). Files claimed by
//	no configuration land in the unmatched batch, which is always present
//	so that every input file appears in exactly one batch.
//
// Inputs:
//
//	graph - The resolved configuration graph in discovery order.
//	files - The full input file set, in submission order.
//	logger - Logger for the unmatched diagnostic. If nil, uses slog.Default().
//
// Outputs:
//
//	[]FileBatch - len(graph)+1 batches; the last one is the unmatched batch.
func MapFiles(graph []*ProjectConfig, files []SourceFile, logger *slog.Logger) []FileBatch {
	if logger == nil {
		logger = slog.Default()
	}

	batches := make([]FileBatch, len(graph)+1)
	for i, config := range graph {
		batches[i].Config = config
	}

	for _, file := range files {
		idx := len(graph) // unmatched unless claimed
		for i, config := range graph {
			if config.Claims(file.Path) {
				idx = i
				break
			}
		}
		batches[idx].Files = append(batches[idx].Files, file)
	}

	unmatched := batches[len(graph)].Files
	if len(unmatched) > 0 {
		// Operators use this to detect missing or incomplete configuration.
		logger.Info("files not covered by any config",
			slog.Int("count", len(unmatched)),
		)
		for _, f := range unmatched {
			logger.Debug("unmatched file", slog.String("path", f.Path))
		}
	}

	return batches
}
