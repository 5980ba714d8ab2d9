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
	"fillmore-labs.com/hoistguard/analyzer/level"
)

const (
	name = "hoistguard"
	doc  = `hoist destructuring out of React hook callbacks

hoistguard reports object destructuring inside the callbacks of useEffect,
useMemo, useCallback and useLayoutEffect. The dependency array then tracks the
whole object, and the hook re-runs on unrelated field changes. The suggested
fix hoists the destructuring before the hook call and depends on the fields.`
	url = "https://pkg.go.dev/fillmore-labs.com/hoistguard/analyzer"
)

// Analyzer checks JavaScript and TypeScript source files.
//
// An Analyzer is safe for concurrent use once its flags are parsed.
type Analyzer struct {
	Name string
	Doc  string
	URL  string

	options *runOptions
}

// New creates a new instance of the hoistguard analyzer.
// It allows for programmatic configuration using [Option]s.
func New(opts ...Option) *Analyzer {
	r := makeRunOptions(opts)

	return &Analyzer{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}
}

// Severity returns the configured rule severity.
func (a *Analyzer) Severity() level.Severity {
	return a.options.severity
}

// Hooks returns the configured hook names.
func (a *Analyzer) Hooks() []string {
	return a.options.hooks
}
