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
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/AleutianAI/AleutianBridge/cmd/bridgelint/config"
	"github.com/AleutianAI/AleutianBridge/pkg/logging"
	"github.com/AleutianAI/AleutianBridge/services/analyzer/bridge"
	"github.com/AleutianAI/AleutianBridge/services/analyzer/project"
	"github.com/AleutianAI/AleutianBridge/services/analyzer/scheduler"
	"github.com/spf13/cobra"
)

// timePrecision rounds the reported run duration for display.
const timePrecision = 10 * time.Millisecond

// runAnalyze resolves the configuration graph, batches the project's source
// files, and drives them through the worker.
func runAnalyze(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}
	if workerURL != "" {
		profile.Worker.URL = workerURL
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(logLevel),
		LogDir:  logDir,
		Service: "bridgelint",
	})
	defer logger.Close()
	slogger := logger.Slog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, cleanup, err := connectWorker(ctx, profile, slogger)
	if err != nil {
		return err
	}
	defer cleanup()

	rules := make([]bridge.Rule, 0, len(profile.Linter.Rules))
	for _, r := range profile.Linter.Rules {
		rules = append(rules, bridge.Rule{Key: r.Key, Configurations: r.Configurations})
	}
	if err := client.InitLinter(ctx, rules, profile.Linter.Environments, profile.Linter.Globals); err != nil {
		return fmt.Errorf("initializing linter: %w", err)
	}

	resolver, err := project.NewResolver(client, project.WithResolverLogger(slogger))
	if err != nil {
		return err
	}
	graph, skipped, err := resolver.Resolve(ctx, configRoots(root, profile.Analysis, slogger))
	if err != nil {
		return fmt.Errorf("resolving configuration graph: %w", err)
	}
	if len(skipped) > 0 {
		slogger.Warn("some configurations could not be parsed",
			slog.Int("skipped", len(skipped)),
		)
	}

	files, err := collectSources(root, profile.Analysis, slogger)
	if err != nil {
		return fmt.Errorf("collecting source files: %w", err)
	}
	batches := project.MapFiles(graph, files, slogger)

	sched, err := scheduler.NewScheduler(client,
		scheduler.WithLogger(slogger),
		scheduler.WithIgnoreHeaderComments(profile.Analysis.IgnoreHeaderComments),
	)
	if err != nil {
		return err
	}
	result, err := sched.Run(ctx, batches)
	if result != nil {
		printSummary(result)
	}
	return err
}

// loadProfile reads the profile flag, falling back to built-in defaults.
func loadProfile() (*config.Profile, error) {
	if profilePath == "" {
		return config.DefaultProfile(), nil
	}
	return config.Load(profilePath)
}

// connectWorker either spawns the worker process or dials a running one,
// returning the connected client and a cleanup function.
func connectWorker(ctx context.Context, profile *config.Profile, logger *slog.Logger) (*bridge.Client, func(), error) {
	timeout := bridge.WithCallTimeout(profile.Worker.CallTimeout.Std())

	if len(profile.Worker.Command) > 0 {
		proc, err := bridge.StartProcess(ctx, profile.Worker.Command, profile.Worker.URL, logger, timeout)
		if err != nil {
			return nil, nil, fmt.Errorf("starting worker: %w", err)
		}
		return proc.Client(), func() { proc.Close(context.Background()) }, nil
	}

	client, err := bridge.NewClient(profile.Worker.URL,
		bridge.WithClientLogger(logger),
		timeout,
	)
	if err != nil {
		return nil, nil, err
	}
	// An externally managed worker outlives the run; nothing to clean up.
	return client, func() {}, nil
}

// configRoots resolves the profile's configuration roots against the project
// root and drops the ones that do not exist on disk.
func configRoots(root string, analysis config.AnalysisConfig, logger *slog.Logger) []string {
	roots := make([]string, 0, len(analysis.ConfigRoots))
	for _, r := range analysis.ConfigRoots {
		if !filepath.IsAbs(r) {
			r = filepath.Join(root, r)
		}
		if _, err := os.Stat(r); err != nil {
			logger.Debug("configuration root not found, skipping",
				slog.String("path", r),
			)
			continue
		}
		roots = append(roots, r)
	}
	return roots
}

// collectSources walks the project root and returns every file the profile's
// include/exclude globs select, in walk order.
func collectSources(root string, analysis config.AnalysisConfig, logger *slog.Logger) ([]project.SourceFile, error) {
	includes := analysis.Includes
	if len(includes) == 0 {
		includes = project.DefaultIncludes
	}
	excludes := analysis.Excludes
	if len(excludes) == 0 {
		excludes = project.DefaultExcludes
	}
	matcher := project.NewGlobMatcher(includes, excludes)

	var files []project.SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "node_modules", "bower_components", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !matcher.Match(rel) {
			return nil
		}
		file := project.SourceFile{
			Path:    path,
			Dialect: project.DialectForPath(path),
		}
		if analysis.SendFileContent {
			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Warn("could not read source file, worker will read from disk",
					slog.String("path", path),
					slog.Any("error", err),
				)
			} else {
				content := string(raw)
				file.Content = &content
			}
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("collected source files",
		slog.String("root", root),
		slog.Int("files", len(files)),
	)
	return files, nil
}

// printSummary writes the human-readable run report to stdout.
func printSummary(result *scheduler.RunResult) {
	var issues, parseFailed, transportFailed int
	for _, f := range result.Files {
		issues += len(f.Issues)
		switch f.Status {
		case scheduler.StatusParseFailed:
			parseFailed++
		case scheduler.StatusTransportFailed:
			transportFailed++
		}
	}

	fmt.Printf("run %s: %s in %s\n", result.RunID, result.Outcome, result.Duration.Round(timePrecision))
	fmt.Printf("  files analyzed: %d\n", len(result.Files))
	fmt.Printf("  issues found:   %d\n", issues)
	if parseFailed > 0 {
		fmt.Printf("  parse failures: %d\n", parseFailed)
	}
	if transportFailed > 0 {
		fmt.Printf("  transport failures: %d\n", transportFailed)
	}
	if result.UnmatchedFiles > 0 {
		fmt.Printf("  files outside any configuration: %d\n", result.UnmatchedFiles)
	}
}
