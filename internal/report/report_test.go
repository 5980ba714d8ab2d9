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

package report_test

import (
	"log/slog"
	"slices"
	"testing"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/edit"
	. "fillmore-labs.com/hoistguard/internal/report"
	"fillmore-labs.com/hoistguard/internal/scope"
	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/target/check"
	"fillmore-labs.com/hoistguard/internal/testsource"
)

// hoist runs the pipeline over src and returns the reporter and the fixed source.
func hoist(t *testing.T, src string) (*Reporter, string) {
	t.Helper()

	tree := testsource.ParseFile(t, syntax.JavaScript, []byte(src))
	scopes := scope.NewIndex(tree)
	cf := astutil.NewCurrentFile("test.js", tree)
	r := NewReporter(cf, scopes)
	stage := target.New(tree, target.NewHooks(target.DefaultHooks...), slog.New(slog.DiscardHandler))

	for _, call := range stage.HookCalls(t.Context()) {
		groups := stage.SelectGroups(t.Context(), call)
		if groups == nil {
			continue
		}

		status, insertion := check.SafetyCheck(check.Input{
			Tree:     tree,
			Scopes:   scopes,
			Call:     call,
			Groups:   groups,
			Reserved: r.Registry(),
		})
		r.ReportHook(t.Context(), call, groups, status, insertion, true)
	}

	var scripts []edit.Script
	for _, d := range r.Diagnostics() {
		scripts = append(scripts, d.Fix)
	}

	merged, _ := edit.Merge(scripts...)

	out, err := edit.Apply(tree.Source, merged)
	if err != nil {
		t.Fatalf("Can't apply edits: %v", err)
	}

	return r, string(out)
}

func TestReportHook(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{
			name: "identifier",
			src: `function C({ user }) {
  const v = useMemo(() => {
    const { name } = user;
    return name;
  }, [user]);
}
`,
			want: `function C({ user }) {
  const { name } = (user) ?? {};
  const v = useMemo(() => {
    return name;
  }, [name]);
}
`,
		},
		{
			name: "merged",
			src: `function C({ obj }) {
  useEffect(() => {
    const { a } = obj;
    const { b } = obj;
    run(a, b);
  }, [obj]);
}
`,
			want: `function C({ obj }) {
  const { a, b } = (obj) ?? {};
  useEffect(() => {
    run(a, b);
  }, [a, b]);
}
`,
		},
		{
			name: "base_still_used",
			src: `function C({ response }) {
  useEffect(() => {
    if (!response) return;
    const { data } = response;
    processData(data);
  }, [response]);
}
`,
			want: `function C({ response }) {
  const { data } = (response) ?? {};
  useEffect(() => {
    if (!response) return;
    processData(data);
  }, [response, data]);
}
`,
		},
		{
			name: "kept_order",
			src: `function C({ config, offset }) {
  useEffect(() => {
    const { value } = config;
    doSomething(value + offset);
  }, [config, offset]);
}
`,
			want: `function C({ config, offset }) {
  const { value } = (config) ?? {};
  useEffect(() => {
    doSomething(value + offset);
  }, [offset, value]);
}
`,
		},
		{
			name: "same_line",
			src: `function C({ user }) { useMemo(() => { const { name } = user; return name; }, [user]); }
`,
			want: `function C({ user }) { const { name } = (user) ?? {};
useMemo(() => { return name; }, [name]); }
`,
		},
		{
			name: "blocked",
			src: `function C({ obj }) {
  useEffect(() => {
    const y = 1;
    const { x = compute(y) } = obj;
    run(x);
  }, [obj]);
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, got := hoist(t, tt.src)

			want := tt.want
			if want == "" {
				want = tt.src
			}

			if got != want {
				t.Errorf("Expected output:\n%s\ngot:\n%s", want, got)
			}

			if n := len(r.Diagnostics()); n != 1 {
				t.Errorf("Expected one diagnostic, got %d", n)
			}
		})
	}
}

func TestReservedNames(t *testing.T) {
	t.Parallel()

	const src = `function C({ user }) {
  useEffect(() => {
    const { name } = user;
    logUser(name);
  }, [user]);
  useEffect(() => {
    const { address } = user;
    logAddress(address);
  }, [user]);
}
`

	const want = `function C({ user }) {
  const { name } = (user) ?? {};
  useEffect(() => {
    logUser(name);
  }, [name]);
  const { address } = (user) ?? {};
  useEffect(() => {
    logAddress(address);
  }, [address]);
}
`

	r, got := hoist(t, src)
	if got != want {
		t.Errorf("Expected output:\n%s\ngot:\n%s", want, got)
	}

	diagnostics := r.Diagnostics()
	if len(diagnostics) != 2 {
		t.Fatalf("Expected two diagnostics, got %d", len(diagnostics))
	}

	for _, d := range diagnostics {
		if d.Category != Category || d.Status != check.HoistAllowed || len(d.Fix) == 0 {
			t.Errorf("Unexpected diagnostic %s (%s) with %d edits", d.Category, d.Status, len(d.Fix))
		}
	}
}

func TestReservedCollision(t *testing.T) {
	t.Parallel()

	const src = `function C({ user, other }) {
  useEffect(() => {
    const { name } = user;
    logUser(name);
  }, [user]);
  useEffect(() => {
    const { name } = other;
    logOther(name);
  }, [other]);
}
`

	r, _ := hoist(t, src)

	diagnostics := r.Diagnostics()
	if len(diagnostics) != 2 {
		t.Fatalf("Expected two diagnostics, got %d", len(diagnostics))
	}

	if got := diagnostics[0].Status; got != check.HoistAllowed {
		t.Errorf("Expected first hoist allowed, got %s", got)
	}

	// The second hoist would declare name again in the same scope.
	if got := diagnostics[1].Status; got != check.HoistBlockedReserved || len(diagnostics[1].Fix) != 0 {
		t.Errorf("Expected second hoist blocked, got %s", got)
	}
}

func TestConflictingFix(t *testing.T) {
	t.Parallel()

	const src = `function C({ obj, other }) {
  useEffect(() => {
    const { a } = obj;
    const { b } = other;
    run(a, b);
  }, [obj, other]);
}
`

	tree := testsource.ParseFile(t, syntax.JavaScript, []byte(src))
	scopes := scope.NewIndex(tree)
	r := NewReporter(astutil.NewCurrentFile("test.js", tree), scopes)
	stage := target.New(tree, target.NewHooks(target.DefaultHooks...), slog.New(slog.DiscardHandler))

	calls := stage.HookCalls(t.Context())
	if len(calls) != 1 {
		t.Fatalf("Expected one hook call, got %d", len(calls))
	}

	call := calls[0]

	candidates := target.Scan(tree, call)
	if len(candidates) != 2 {
		t.Fatalf("Expected two candidates, got %d", len(candidates))
	}

	// Both scripts insert before the same statement and rewrite the same dependency array.
	insertion := call.InsertionPoint()
	r.ReportHook(t.Context(), call, target.BuildGroups(tree, candidates[:1]), check.HoistAllowed, insertion, true)
	r.ReportHook(t.Context(), call, target.BuildGroups(tree, candidates), check.HoistAllowed, insertion, true)

	diagnostics := r.Diagnostics()
	if len(diagnostics) != 2 {
		t.Fatalf("Expected two diagnostics, got %d", len(diagnostics))
	}

	if len(diagnostics[0].Fix) == 0 {
		t.Error("Expected first diagnostic to carry a fix")
	}

	if len(diagnostics[1].Fix) != 0 {
		t.Errorf("Expected conflicting fix to be withheld, got %v", diagnostics[1].Fix)
	}

	id := scopes.Innermost(insertion).ID
	if !r.Registry().Reserved(id, "a") {
		t.Error("Expected a to be reserved")
	}

	if r.Registry().Reserved(id, "b") {
		t.Error("Expected b to stay free")
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	d := Data{ObjectName: "user", HookName: "useEffect", Dependencies: "name, age"}

	const want = `What's wrong: "user" is destructured inside the useEffect callback -> ` +
		"Why it matters: the deps array then tracks the whole object, so the hook can re-run for unrelated field changes and can hide stale closures -> " +
		"How to fix: hoist the destructuring before useEffect (or memoize/guard the object) and depend on the specific fields: name, age."

	if got := d.Message(); got != want {
		t.Errorf("Expected message %q, got %q", want, got)
	}
}

func TestRemovalRange(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{"whole_line", "f(() => {\n  const { a } = o;\n  g(a);\n});\n", "f(() => {\n  g(a);\n});\n"},
		{"trailing_semicolon", "f(() => {\n  const { a } = o;;\n  g(a);\n});\n", "f(() => {\n  g(a);\n});\n"},
		{"code_before", "f(() => { const { a } = o;\n  g(a);\n});\n", "f(() => {   g(a);\n});\n"},
		{"code_after", "f(() => {\n  const { a } = o; g(a);\n});\n", "f(() => {\n  g(a);\n});\n"},
		{"last_line", "const { a } = o;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.ParseFile(t, syntax.JavaScript, []byte(tt.src))
			cf := astutil.NewCurrentFile("test.js", tree)
			decl := testsource.FindKind(t, tree, syntax.LexicalDeclaration)

			start, end := RemovalRange(cf, decl)

			got, err := edit.Apply(tree.Source, edit.Script{edit.Delete(start, end)})
			if err != nil {
				t.Fatal(err)
			}

			if string(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	var nilRegistry *Registry
	if nilRegistry.Reserved(0, "a") {
		t.Error("Expected nil registry to reserve nothing")
	}

	r := NewRegistry()
	r.Reserve(1, slices.Values([]string{"a", "b"}))
	r.Reserve(1, slices.Values([]string{"b", "c"}))

	if !r.Reserved(1, "c") || r.Reserved(2, "a") {
		t.Error("Unexpected reservation")
	}

	if got, want := r.Names(1), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Expected names %q, got %q", want, got)
	}
}
