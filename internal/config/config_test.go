// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/pflag"

	. "fillmore-labs.com/hoistguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(Fix)
	if !b.Enabled(Fix) || b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected flags %v", slices.Collect(b.Flags()))
	}

	b.Set(IncludeGenerated, true)
	b.Set(Fix, false)

	if got, want := slices.Collect(b.Flags()), []Behavior{IncludeGenerated}; !slices.Equal(got, want) {
		t.Errorf("Expected flags %v, got %v", want, got)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	f, err := Load(t.TempDir(), "", nil, []string{"useEffect"})
	if err != nil {
		t.Fatal(err)
	}

	if f.Severity != "error" || f.Fix || !slices.Equal(f.Hooks, []string{"useEffect"}) {
		t.Errorf("Unexpected defaults %+v", f)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	const toml = `severity = "warn"
fix = true
hooks = ["useEffect", "useCustomEffect"]
exclude = ["dist/**"]
`
	if err := os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(toml), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeySeverity, "error", "")

	if err := fs.Parse([]string{"--severity=off"}); err != nil {
		t.Fatal(err)
	}

	f, err := Load(dir, "", fs, nil)
	if err != nil {
		t.Fatal(err)
	}

	if f.Severity != "off" {
		t.Errorf("Expected flag to override severity, got %q", f.Severity)
	}

	if !f.Fix || !f.Behavior().Enabled(Fix) || f.Behavior().Enabled(IncludeGenerated) {
		t.Errorf("Unexpected behavior %+v", f)
	}

	if want := []string{"useEffect", "useCustomEffect"}; !slices.Equal(f.Hooks, want) {
		t.Errorf("Expected hooks %q, got %q", want, f.Hooks)
	}

	if want := []string{"dist/**"}; !slices.Equal(f.Exclude, want) {
		t.Errorf("Expected exclude %q, got %q", want, f.Exclude)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"), nil, nil); err == nil {
		t.Error("Expected error for missing configuration file")
	}
}
