// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
worker:
  url: http://localhost:7777
  command: ["node", "worker.js", "--port", "7777"]
  call_timeout: 90s
linter:
  environments: [browser, node]
  globals: [angular]
  rules:
    - key: no-console
      configurations: []
analysis:
  config_roots: [tsconfig.json, tsconfig.test.json]
  ignore_header_comments: true
`), 0o644))

	profile, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7777", profile.Worker.URL)
	assert.Equal(t, []string{"node", "worker.js", "--port", "7777"}, profile.Worker.Command)
	assert.Equal(t, 90*time.Second, profile.Worker.CallTimeout.Std())
	require.Len(t, profile.Linter.Rules, 1)
	assert.Equal(t, "no-console", profile.Linter.Rules[0].Key)
	assert.Equal(t, []string{"browser", "node"}, profile.Linter.Environments)
	assert.Equal(t, []string{"tsconfig.json", "tsconfig.test.json"}, profile.Analysis.ConfigRoots)
	assert.True(t, profile.Analysis.IgnoreHeaderComments)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("linter:\n  environments: [node]\n"), 0o644))

	profile, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, defaultWorkerURL, profile.Worker.URL)
	assert.Equal(t, defaultCallTimeout, profile.Worker.CallTimeout.Std())
	assert.Equal(t, []string{"tsconfig.json"}, profile.Analysis.ConfigRoots)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worker: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()
	assert.Equal(t, defaultWorkerURL, profile.Worker.URL)
	assert.Empty(t, profile.Worker.Command)
}
