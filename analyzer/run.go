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
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/hoistguard/analyzer/level"
	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/config"
	"fillmore-labs.com/hoistguard/internal/report"
	"fillmore-labs.com/hoistguard/internal/scope"
	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/target/check"
)

// Run executes the hoistguard pipeline on one source file.
//
// The language is selected by the file extension. Sources with syntax errors
// return an error wrapping [syntax.ErrSyntax].
func (a *Analyzer) Run(ctx context.Context, filename string, src []byte) (*Result, error) {
	r := a.options

	result := &Result{Filename: filename, Source: src, Severity: r.severity}
	if r.severity == level.SeverityOff {
		return result, nil
	}

	lang, ok := syntax.LanguageFromExtension(filename)
	if !ok {
		return nil, fmt.Errorf("%s: %w", filename, syntax.ErrUnsupported)
	}

	ctx, task := trace.NewTask(ctx, "HoistGuard")
	defer task.End()

	tree, err := syntax.NewParser().Parse(ctx, src, lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	currentFile := astutil.NewCurrentFile(filename, tree)

	generated := currentFile.Generated()
	if generated && !r.behavior.Enabled(config.IncludeGenerated) {
		r.logger.LogAttrs(ctx, slog.LevelDebug, "skipping generated file", slog.String("file", filename))

		return result, nil
	}

	// Build the scope index once per file
	scopes := scope.NewIndex(tree)

	ts := target.New(tree, target.NewHooks(r.hooks...), r.logger)
	reporter := report.NewReporter(currentFile, scopes)

	// No fixes for generated files
	fix := r.behavior.Enabled(config.Fix) && !generated

	for _, call := range ts.HookCalls(ctx) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Skip hook calls with nolint comment
		if currentFile.NoLintComment(call.Call) {
			continue
		}

		// Stage 1: Collect and group the destructuring declarations of the callback
		groups := ts.SelectGroups(ctx, call)
		if groups == nil {
			continue
		}

		// Stage 2: Validate hoisting against earlier hoists of this file
		var (
			status    check.Status
			insertion *syntax.Node
		)

		trace.WithRegion(ctx, "Validate", func() {
			status, insertion = check.SafetyCheck(check.Input{
				Tree:     tree,
				Scopes:   scopes,
				Call:     call,
				Groups:   groups,
				Reserved: reporter.Registry(),
			})
		})

		if r.logger.Enabled(ctx, slog.LevelDebug) {
			attrs := []slog.Attr{
				slog.String("hook", call.Name),
				slog.Int("offset", call.Call.Start()),
				slog.String("status", status.String()),
			}
			if insertion != nil {
				attrs = append(attrs, slog.String("scope", scope.Name(scopes.Innermost(insertion))))
			}

			r.logger.LogAttrs(ctx, slog.LevelDebug, "hook call validated", attrs...)
		}

		// Stage 3: Generate the diagnostic with the suggested fix
		reporter.ReportHook(ctx, call, groups, status, insertion, fix)
	}

	result.Diagnostics = reporter.Diagnostics()

	return result, nil
}
