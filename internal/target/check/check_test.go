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

package check_test

import (
	"errors"
	"log/slog"
	"testing"

	"fillmore-labs.com/hoistguard/internal/scope"
	"fillmore-labs.com/hoistguard/internal/target"
	. "fillmore-labs.com/hoistguard/internal/target/check"
	"fillmore-labs.com/hoistguard/internal/testsource"
)

type reserved map[string]struct{}

func (r reserved) Reserved(_ scope.ID, name string) bool {
	_, ok := r[name]

	return ok
}

func TestSafetyCheck(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		src      string
		reserved reserved
		want     Status
	}{
		{
			name: "simple",
			src:  `useMemo(() => { const { name } = props; return name; }, [props]);`,
			want: HoistAllowed,
		},
		{
			name: "merged",
			src:  `useEffect(() => { const { a } = props; const { b } = props; run(a, b); }, [props]);`,
			want: HoistAllowed,
		},
		{
			name: "no_insertion_point",
			src:  `const f = () => useEffect(() => { const { a } = props; run(a); }, [props]);`,
			want: HoistBlockedNoInsertionPoint,
		},
		{
			name: "ambiguous",
			src: `const obj1 = {}, obj2 = {};
useEffect(() => { const { a } = obj1; const { a: b, c: a } = obj2; run(a, b); }, [obj1, obj2]);`,
			want: HoistBlockedAmbiguous,
		},
		{
			name: "local_default",
			src:  `useEffect(() => { const y = 1; const { x = compute(y) } = props; run(x); }, [props]);`,
			want: HoistBlockedEscape,
		},
		{
			name: "parameter_key",
			src:  `useCallback((key) => { const { [key]: value } = props; run(value); }, [props]);`,
			want: HoistBlockedEscape,
		},
		{
			name: "earlier_property",
			src:  `useEffect(() => { const { a, b = a } = props; run(a, b); }, [props]);`,
			want: HoistAllowed,
		},
		{
			name: "later_property",
			src:  `useEffect(() => { const { b = a } = props; const { a } = props; run(a, b); }, [props]);`,
			want: HoistBlockedEscape,
		},
		{
			name: "declared_later",
			src: `useEffect(() => { const { a } = data; run(a); }, [data]);
const data = load();`,
			want: HoistBlockedEscape,
		},
		{
			name: "local_collision",
			src:  `useEffect(() => { const { a } = props; { const a = 2; run(a); } }, [props]);`,
			want: HoistBlockedLocal,
		},
		{
			name: "parameter_collision",
			src:  `useCallback((a) => { const { a: b } = props; run(a, b); }, [props]);`,
			want: HoistAllowed,
		},
		{
			name: "scope_collision",
			src:  `const name = 'x'; useMemo(() => { const { name } = props; return name; }, [props]);`,
			want: HoistBlockedScope,
		},
		{
			name: "global_reference",
			src:  `useMemo(() => { const { fetch } = props; return fetch; }, [props]); fetch('/');`,
			want: HoistBlockedScope,
		},
		{
			name:     "reserved",
			src:      `useMemo(() => { const { name } = props; return name; }, [props]);`,
			reserved: reserved{"name": {}},
			want:     HoistBlockedReserved,
		},
		{
			name: "duplicate",
			src:  `useEffect(() => { const { a } = props; const { a = 1 } = props; run(a); }, [props]);`,
			want: HoistBlockedDuplicate,
		},
		{
			name: "reassigned",
			src:  `useEffect(() => { let { a } = props; a = a + 1; run(a); }, [props]);`,
			want: HoistBlockedAssigned,
		},
		{
			name: "global_in_callback",
			src:  `useEffect(() => { log(name); if (x) { const { name } = props; use(name); } }, [props, x]);`,
			want: HoistBlockedScope,
		},
		{
			name: "local_in_callback",
			src:  `useEffect(() => { const { name } = props; const log = () => name; log(); }, [props]);`,
			want: HoistAllowed,
		},
		{
			name: "read_before_var",
			src:  `useEffect(() => { use(a); var { a } = props; run(a); }, [props]);`,
			want: HoistBlockedReadBeforeDeclaration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _ := testsource.Parse(t, tt.src)
			stage := target.New(tree, target.NewHooks(target.DefaultHooks...), slog.New(slog.DiscardHandler))

			calls := stage.HookCalls(t.Context())
			if len(calls) != 1 {
				t.Fatalf("Expected one hook call, got %d", len(calls))
			}

			groups := stage.SelectGroups(t.Context(), calls[0])
			if groups == nil {
				t.Fatal("Expected destructuring groups")
			}

			in := Input{
				Tree:     tree,
				Scopes:   scope.NewIndex(tree),
				Call:     calls[0],
				Groups:   groups,
				Reserved: tt.reserved,
			}

			status, insertion := SafetyCheck(in)
			if status != tt.want {
				t.Errorf("Expected safety check %q, got %q", tt.want, status)
			}

			if status == HoistAllowed && insertion == nil {
				t.Error("Expected insertion point")
			}
		})
	}
}

func TestStatusErr(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		status Status
		want   error
	}{
		{HoistAllowed, nil},
		{HoistBlockedNoInsertionPoint, ErrNoInsertionPoint},
		{HoistBlockedAmbiguous, ErrAmbiguousGroupCollision},
		{HoistBlockedEscape, ErrReferenceEscapesHoist},
		{HoistBlockedLocal, ErrNameCollision},
		{HoistBlockedScope, ErrNameCollision},
		{HoistBlockedReserved, ErrNameCollision},
		{HoistBlockedDuplicate, ErrDuplicateBindingName},
		{HoistBlockedAssigned, ErrReassignedBinding},
		{HoistBlockedReadBeforeDeclaration, ErrReadBeforeDeclaration},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.status.Err(); !errors.Is(got, tt.want) || (tt.want == nil) != (got == nil) {
				t.Errorf("Expected error %v, got %v", tt.want, got)
			}

			if got, want := tt.status.Hoistable(), tt.want == nil; got != want {
				t.Errorf("Expected hoistable %t, got %t", want, got)
			}
		})
	}
}
