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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultWorkerURL   = "http://localhost:9229"
	defaultCallTimeout = 2 * time.Minute
)

// Load reads a profile file and fills in defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	applyDefaults(&profile)
	return &profile, nil
}

// DefaultProfile returns a usable profile when no file is given.
func DefaultProfile() *Profile {
	profile := &Profile{}
	applyDefaults(profile)
	return profile
}

func applyDefaults(profile *Profile) {
	if profile.Worker.URL == "" {
		profile.Worker.URL = defaultWorkerURL
	}
	if profile.Worker.CallTimeout == 0 {
		profile.Worker.CallTimeout = Duration(defaultCallTimeout)
	}
	if len(profile.Analysis.ConfigRoots) == 0 {
		profile.Analysis.ConfigRoots = []string{"tsconfig.json"}
	}
}
