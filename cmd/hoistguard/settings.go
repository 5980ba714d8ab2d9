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

package main

import (
	"fmt"

	"fillmore-labs.com/hoistguard/analyzer"
	"fillmore-labs.com/hoistguard/analyzer/level"
	"fillmore-labs.com/hoistguard/internal/config"
)

// options converts the file configuration into a list of [analyzer.Option]s.
func options(cfg config.File) (analyzer.Options, error) {
	var severity level.Severity
	if err := severity.UnmarshalText([]byte(cfg.Severity)); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	behavior := cfg.Behavior()

	opts := analyzer.Options{
		analyzer.WithSeverity(severity),
		analyzer.WithGenerated(behavior.Enabled(config.IncludeGenerated)),
	}

	if len(cfg.Hooks) > 0 {
		opts = append(opts, analyzer.WithHooks(cfg.Hooks...))
	}

	return opts, nil
}
