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

import "testing"

func TestGlobMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		includes []string
		excludes []string
		path     string
		want     bool
	}{
		{
			name: "no patterns includes all",
			path: "src/app.ts",
			want: true,
		},
		{
			name:     "simple include matches",
			includes: []string{"*.ts"},
			path:     "app.ts",
			want:     true,
		},
		{
			name:     "simple include rejects other extension",
			includes: []string{"*.ts"},
			path:     "app.go",
			want:     false,
		},
		{
			name:     "star does not cross separators",
			includes: []string{"*.ts"},
			path:     "src/app.ts",
			want:     false,
		},
		{
			name:     "doublestar matches nested",
			includes: []string{"**/*.ts"},
			path:     "a/b/c/app.ts",
			want:     true,
		},
		{
			name:     "doublestar matches at root",
			includes: []string{"**/*.ts"},
			path:     "app.ts",
			want:     true,
		},
		{
			name:     "doublestar in the middle",
			includes: []string{"src/**/*.tsx"},
			path:     "src/components/forms/input.tsx",
			want:     true,
		},
		{
			name:     "doublestar middle rejects wrong root",
			includes: []string{"src/**/*.tsx"},
			path:     "lib/components/input.tsx",
			want:     false,
		},
		{
			name:     "exclude wins over include",
			includes: []string{"**/*.js"},
			excludes: []string{"node_modules/**"},
			path:     "node_modules/lodash/index.js",
			want:     false,
		},
		{
			name:     "exclude leaves sources alone",
			includes: []string{"**/*.js"},
			excludes: []string{"node_modules/**"},
			path:     "src/index.js",
			want:     true,
		},
		{
			name:     "trailing doublestar matches directory itself",
			excludes: []string{"dist/**"},
			path:     "dist",
			want:     false,
		},
		{
			name:     "question mark matches one character",
			includes: []string{"src/v?.ts"},
			path:     "src/v1.ts",
			want:     true,
		},
		{
			name:     "character class",
			includes: []string{"src/[ab].ts"},
			path:     "src/a.ts",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewGlobMatcher(tt.includes, tt.excludes)
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
