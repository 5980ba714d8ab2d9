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

package target_test

import (
	"log/slog"
	"slices"
	"testing"

	"fillmore-labs.com/hoistguard/internal/syntax"
	. "fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/testsource"
)

func hookCalls(t *testing.T, src string) (*syntax.Tree, Stage, []HookCall) {
	t.Helper()

	tree, _ := testsource.Parse(t, src)
	stage := New(tree, NewHooks(DefaultHooks...), slog.New(slog.DiscardHandler))

	return tree, stage, stage.HookCalls(t.Context())
}

func TestMatchHook(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{"effect", `useEffect(() => { run(); }, [a, b.c]);`, []string{"a", "b.c"}},
		{"function", `useMemo(function () { return 1; }, []);`, []string{}},
		{"expression_body", `useEffect(() => run(a), [a]);`, nil},
		{"async", `useEffect(async () => { await run(); }, [a]);`, nil},
		{"no_deps", `useEffect(() => { run(); });`, nil},
		{"deps_variable", `useEffect(() => { run(); }, deps);`, nil},
		{"member_callee", `React.useEffect(() => { run(); }, [a]);`, nil},
		{"other_hook", `useState(() => { run(); }, [a]);`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, calls := hookCalls(t, tt.src)

			if tt.want == nil {
				if len(calls) != 0 {
					t.Errorf("Expected no hook call, got %d", len(calls))
				}

				return
			}

			if len(calls) != 1 {
				t.Fatalf("Expected one hook call, got %d", len(calls))
			}

			if got := calls[0].DepTexts; !slices.Equal(got, tt.want) {
				t.Errorf("Expected dependencies %q, got %q", tt.want, got)
			}
		})
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		keys []string
	}{
		{
			name: "identifier",
			src:  `useMemo(() => { const { name } = user; return name; }, [user]);`,
			keys: []string{"user"},
		},
		{
			name: "member_chain",
			src:  `useEffect(() => { const { a } = props.audio; run(a); }, [props.audio]);`,
			keys: []string{"props.audio"},
		},
		{
			name: "optional_chain",
			src:  `useEffect(() => { const { items } = response?.data; run(items); }, [response?.data]);`,
			keys: []string{"response?.data"},
		},
		{
			name: "assertion",
			src:  `useEffect(() => { const { a } = (user as User)!; run(a); }, [user]);`,
			keys: []string{"user"},
		},
		{
			name: "not_dependency",
			src:  `useEffect(() => { const { a } = other; run(a); }, [user]);`,
		},
		{
			name: "rest",
			src:  `useEffect(() => { const { a, ...rest } = user; run(a, rest); }, [user]);`,
		},
		{
			name: "two_declarators",
			src:  `useEffect(() => { const { a } = user, b = 1; run(a, b); }, [user]);`,
		},
		{
			name: "call_init",
			src:  `useEffect(() => { const { a } = load(); run(a); }, [load()]);`,
		},
		{
			name: "literal_init",
			src:  `useEffect(() => { const { data } = { data: response }; run(data); }, [response]);`,
		},
		{
			name: "nested_function",
			src:  `useEffect(() => { const f = () => { const { data } = response; }; f(); }, [response]);`,
		},
		{
			name: "ref_current",
			src:  `useLayoutEffect(() => { const { current } = value; run(current); }, [value]);`,
		},
		{
			name: "enclosing_guard",
			src:  `useEffect(() => { if (response.type === 'ok') { const { data } = response; run(data); } }, [response]);`,
		},
		{
			name: "enclosing_bare_guard",
			src:  `useEffect(() => { if (user) { const { name } = user; run(name); } }, [user]);`,
		},
		{
			name: "prior_member_guard",
			src:  `useEffect(() => { if (!response.ok) return; const { data } = response; run(data); }, [response]);`,
		},
		{
			name: "prior_bare_check",
			src:  `useEffect(() => { if (!response) return; const { data } = response; run(data); }, [response]);`,
			keys: []string{"response"},
		},
		{
			name: "nested_block",
			src:  `useEffect(() => { for (const x of xs) { const { a } = user; run(a, x); } }, [user, xs]);`,
			keys: []string{"user"},
		},
		{
			name: "for_init",
			src:  `useEffect(() => { for (let { a } = user; a; a = null) run(a); }, [user]);`,
		},
		{
			name: "multiple",
			src:  `useEffect(() => { const { a } = obj; const { b } = obj; const { c } = other; run(a, b, c); }, [obj, other]);`,
			keys: []string{"obj", "obj", "other"},
		},
		{
			name: "arrow_this",
			src:  `useEffect(() => { const { a } = this.props; run(a); }, [this.props]);`,
			keys: []string{"this.props"},
		},
		{
			name: "function_this",
			src:  `useEffect(function () { const { a } = this.props; run(a); }, [this.props]);`,
		},
		{
			name: "function_identifier",
			src:  `useEffect(function () { const { a } = props; run(a); }, [props]);`,
			keys: []string{"props"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _, calls := hookCalls(t, tt.src)
			if len(calls) != 1 {
				t.Fatalf("Expected one hook call, got %d", len(calls))
			}

			var keys []string
			for _, c := range Scan(tree, calls[0]) {
				keys = append(keys, c.DepKey)
			}

			if !slices.Equal(keys, tt.keys) {
				t.Errorf("Expected candidates %q, got %q", tt.keys, keys)
			}
		})
	}
}

func TestRootIdentifier(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		src  string
		want string
		ok   bool
	}{
		{"user;", "user", true},
		{"a.b.c;", "a", true},
		{"a?.b[c];", "a", true},
		{"(a!).b;", "a", true},
		{"this.props;", "", true},
		{"f().x;", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			tree, _ := testsource.Parse(t, tt.src)
			expr := testsource.FindKind(t, tree, syntax.ExpressionStatement).Child(0)

			got, ok := RootIdentifier(tree, expr)
			if got != tt.want || ok != tt.ok {
				t.Errorf("RootIdentifier(%q) = %q, %t, want %q, %t", tt.src, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRenderProperty(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		pattern string
		want    []string
	}{
		{"shorthand", `{ a, b }`, []string{"a", "b"}},
		{"rename", `{ data: responseData }`, []string{"data: responseData"}},
		{"default", `{ timeout = 1000 }`, []string{"timeout = 1000"}},
		{"renamed_default", `{ age: userAge = 0 }`, []string{"age: userAge = 0"}},
		{"same_name_default", `{ name: name = 'x' }`, []string{"name = 'x'"}},
		{"nested_object", `{ profile: { name, age } }`, []string{"profile: { name, age } = {}"}},
		{"nested_array", `{ list: [first, , third] }`, []string{"list: [first, , third] = []"}},
		{"nested_default", `{ profile: { name } = fallback }`, []string{"profile: { name } = fallback"}},
		{"computed", `{ [ key ]: value }`, []string{"[key]: value"}},
		{"string_key", `{ 'data-id': id }`, []string{"'data-id': id"}},
		{"array_hole", `{ xs: [, second] }`, []string{"xs: [, second] = []"}},
		{"array_elements", `{ xs: [{ a }, [b], c = 1, ...d] }`, []string{"xs: [{ a } = {}, [b] = [], c = 1, ...d] = []"}},
		{"whitespace", `{ a:b,c:{d}}`, []string{"a: b", "c: { d } = {}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _ := testsource.Parse(t, "const "+tt.pattern+" = obj;")
			pattern := testsource.FindKind(t, tree, syntax.ObjectPattern)

			var got []string
			for _, p := range pattern.Children() {
				got = append(got, RenderProperty(tree, p))
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPropertyKey(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, `const { a, b: c, 'd': e, f = 1 } = obj;`)
	pattern := testsource.FindKind(t, tree, syntax.ObjectPattern)

	var got []string
	for _, p := range pattern.Children() {
		got = append(got, PropertyKey(tree, p))
	}

	if want := []string{"a", "b", "d", "f"}; !slices.Equal(got, want) {
		t.Errorf("Expected keys %q, got %q", want, got)
	}
}

func TestSelectGroups(t *testing.T) {
	t.Parallel()

	const src = `useEffect(() => {
  const { name } = user;
  const { age, name: alias } = user!;
  const { name } = user;
  const { x = y } = other;
  run(name, age, alias, x);
}, [user, other]);`

	_, stage, calls := hookCalls(t, src)
	if len(calls) != 1 {
		t.Fatalf("Expected one hook call, got %d", len(calls))
	}

	groups := stage.SelectGroups(t.Context(), calls[0])
	if groups.Len() != 2 {
		t.Fatalf("Expected 2 groups, got %d", groups.Len())
	}

	user := groups.List[0]
	if user.Key != "user" || user.ObjectText != "user" || user.Base != "user" {
		t.Errorf("Unexpected group %q (%q, base %q)", user.Key, user.ObjectText, user.Base)
	}

	if got, want := user.Pattern(), "{ name, age, name: alias }"; got != want {
		t.Errorf("Expected pattern %q, got %q", want, got)
	}

	if got, want := user.Names.Slice(), []string{"name", "age", "alias"}; !slices.Equal(got, want) {
		t.Errorf("Expected names %q, got %q", want, got)
	}

	if len(user.Decls) != 3 || len(user.Inits) != 3 {
		t.Errorf("Expected 3 declarations, got %d", len(user.Decls))
	}

	other, ok := groups.Lookup("other")
	if !ok {
		t.Fatal("Expected group other")
	}

	if got := other.Properties[0].References.Slice(); !slices.Equal(got, []string{"y"}) {
		t.Errorf("Expected references [y], got %q", got)
	}

	if got, want := groups.Dependencies().Slice(), []string{"name", "age", "alias", "x"}; !slices.Equal(got, want) {
		t.Errorf("Expected dependencies %q, got %q", want, got)
	}

	if !groups.IsDecl(user.Decls[1]) || !groups.IsRemoved(other.Inits[0]) {
		t.Error("Expected declarations and initializers to be removed")
	}
}

func TestSelectGroupsEmpty(t *testing.T) {
	t.Parallel()

	_, stage, calls := hookCalls(t, `useEffect(() => { run(user.name); }, [user]);`)
	if len(calls) != 1 {
		t.Fatalf("Expected one hook call, got %d", len(calls))
	}

	if groups := stage.SelectGroups(t.Context(), calls[0]); groups != nil {
		t.Errorf("Expected no groups, got %d", groups.Len())
	}
}
