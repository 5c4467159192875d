// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command bridgelint drives a JavaScript/TypeScript analysis worker over a
// whole project: it resolves the project configuration graph, batches the
// source files per configuration, and streams each file through the worker.
//
// Usage:
//
//	bridgelint analyze [project-root]
//	bridgelint analyze --profile bridgelint.yaml --worker-url http://localhost:9229 .
package main

import (
	"errors"
	"os"

	"github.com/AleutianAI/AleutianBridge/services/analyzer/scheduler"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, scheduler.ErrWorkerLost) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
