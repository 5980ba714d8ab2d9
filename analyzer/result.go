// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
	"fillmore-labs.com/hoistguard/analyzer/level"
	"fillmore-labs.com/hoistguard/internal/edit"
	"fillmore-labs.com/hoistguard/internal/report"
)

// Result holds the diagnostics of one file.
type Result struct {
	Filename    string
	Source      []byte
	Severity    level.Severity
	Diagnostics []report.Diagnostic
}

// Fixable returns the number of diagnostics with a suggested fix.
func (r *Result) Fixable() int {
	n := 0

	for _, d := range r.Diagnostics {
		if len(d.Fix) > 0 {
			n++
		}
	}

	return n
}

// Apply applies the suggested fixes to the source.
//
// Fixes are applied in diagnostic order; a fix conflicting with an earlier one is
// dropped whole. Apply returns the fixed source and the diagnostics left unfixed.
func (r *Result) Apply() (fixed []byte, remaining []report.Diagnostic, err error) {
	scripts := make([]edit.Script, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		scripts[i] = d.Fix
	}

	merged, dropped := edit.Merge(scripts...)

	fixed, err = edit.Apply(r.Source, merged)
	if err != nil {
		return nil, nil, err
	}

	isDropped := make(map[int]bool, len(dropped))
	for _, i := range dropped {
		isDropped[i] = true
	}

	for i, d := range r.Diagnostics {
		if len(d.Fix) == 0 || isDropped[i] {
			remaining = append(remaining, d)
		}
	}

	return fixed, remaining, nil
}
