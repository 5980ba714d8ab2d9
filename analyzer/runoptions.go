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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/hoistguard/analyzer/level"
	"fillmore-labs.com/hoistguard/internal/config"
	"fillmore-labs.com/hoistguard/internal/target"
)

// runOptions represent configuration runOptions for the hoistguard analyzer.
type runOptions struct {
	// behavior holds behavioral options.
	behavior config.BitMask[config.Behavior]

	// hooks are the names of the hooks whose callbacks are checked.
	hooks []string

	// severity of the reported diagnostics.
	severity level.Severity

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior: config.DefaultBehavior(),
		hooks:    slices.Clone(target.DefaultHooks),
		severity: level.SeverityError,
		logger:   slog.New(slog.DiscardHandler),
	}
}
