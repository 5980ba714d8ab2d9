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

// Package report turns hoisting targets into diagnostics and suggested fixes.
package report

import (
	"cmp"
	"context"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/edit"
	"fillmore-labs.com/hoistguard/internal/scope"
	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/target/check"
)

// Reporter collects the diagnostics of one file.
type Reporter struct {
	astutil.CurrentFile

	scopes      *scope.Index
	registry    *Registry
	accepted    edit.Script
	diagnostics []Diagnostic
}

// NewReporter creates a [Reporter] for a file.
func NewReporter(cf astutil.CurrentFile, scopes *scope.Index) *Reporter {
	return &Reporter{CurrentFile: cf, scopes: scopes, registry: NewRegistry()}
}

// Registry returns the reserved names of hoists reported so far.
func (r *Reporter) Registry() *Registry { return r.registry }

// Report emits a plain diagnostic for rng.
func (r *Reporter) Report(rng astutil.Range, category, message string) {
	r.diagnostics = append(r.diagnostics, r.newDiagnostic(rng, category, message))
}

func (r *Reporter) newDiagnostic(rng astutil.Range, category, message string) Diagnostic {
	line, column := r.Position(rng.Start())

	return Diagnostic{
		Start:    rng.Start(),
		End:      rng.End(),
		Line:     line,
		Column:   column,
		Category: category,
		Message:  message,
	}
}

// ReportHook emits the diagnostic for the groups of a hook call, located at the first
// declaration of the first group.
//
// When fix is set and status allows hoisting, the diagnostic carries the edit script and
// the hoisted names are reserved in the target scope. A script overlapping one accepted
// earlier is withheld and reserves nothing.
func (r *Reporter) ReportHook(ctx context.Context, call target.HookCall, groups *target.Groups, status check.Status, insertion *syntax.Node, fix bool) {
	defer trace.StartRegion(ctx, "Plan").End()

	data := NewData(call, groups)
	diagnostic := r.newDiagnostic(groups.List[0].Decls[0], Category, data.Message())
	diagnostic.Data = &data
	diagnostic.Status = status

	if fix && status.Hoistable() {
		edits := createEdits(r.CurrentFile, call, groups, insertion)
		switch err := edits.Validate(len(r.Tree().Source)); {
		case err != nil:
			astutil.InternalError(r, call.Call, "Can't hoist destructuring: %v", err)

		case r.accepted.Overlaps(edits):
			// The diagnostic stays without a fix and the names stay free.

		default:
			diagnostic.Fix = edits
			r.accepted = append(r.accepted, edits...)
			r.registry.Reserve(r.scopes.Innermost(insertion).ID, groups.Dependencies().All())
		}
	}

	r.diagnostics = append(r.diagnostics, diagnostic)
}

// Diagnostics returns the collected diagnostics ordered by position.
func (r *Reporter) Diagnostics() []Diagnostic {
	return slices.SortedStableFunc(slices.Values(r.diagnostics), func(a, b Diagnostic) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
}
