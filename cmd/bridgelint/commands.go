// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	profilePath string
	workerURL   string
	logLevel    string
	logDir      string

	rootCmd = &cobra.Command{
		Use:   "bridgelint",
		Short: "Drive a JavaScript/TypeScript analysis worker over a project",
		Long: `Bridgelint resolves a project's configuration graph (tsconfig and
				friends), batches source files under the configuration that governs
				them, and submits each file to an analysis worker over HTTP.`,
		SilenceUsage: true,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [project-root]",
		Short: "Analyze every source file under the project root",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze, // Defined in cmd_analyze.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Minimum log severity: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"Directory for JSON log files (disabled when empty)")

	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&profilePath, "profile", "",
		"Path to the analysis profile YAML (built-in defaults when empty)")
	analyzeCmd.Flags().StringVar(&workerURL, "worker-url", "",
		"Override the worker base URL from the profile")
}
