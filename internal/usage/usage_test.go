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

package usage_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/testsource"
	. "fillmore-labs.com/hoistguard/internal/usage"
)

func TestReferencedNames(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		kind syntax.Kind
		want []string
	}{
		{"member", `a.b.c[d];`, syntax.ExpressionStatement, []string{"a", "d"}},
		{"object_literal", `({ k: v, [c]: 1, s });`, syntax.ExpressionStatement, []string{"v", "c", "s"}},
		{"pattern_defaults", `const { a = x, b: { c } = y, [k]: z } = o;`, syntax.ObjectPattern, []string{"x", "y", "k"}},
		{"declaration", `const { a = x } = o;`, syntax.LexicalDeclaration, []string{"x", "o"}},
		{"function", `(function f(p = q) { return p + r; });`, syntax.ExpressionStatement, []string{"q", "p", "r"}},
		{"arrow", `((p) => p.x + w);`, syntax.ExpressionStatement, []string{"p", "w"}},
		{"typescript", `(a as T)!.b satisfies U;`, syntax.ExpressionStatement, []string{"a"}},
		{"assignment_pattern", `({ a, b = d } = e);`, syntax.ExpressionStatement, []string{"d", "e"}},
		{"assignment", `a = b;`, syntax.ExpressionStatement, []string{"a", "b"}},
		{"catch", `try { t(); } catch (err) { log(err, e); }`, syntax.TryStatement, []string{"t", "log", "err", "e"}},
		{"class", `class C extends B { m() { return this.x; } }`, syntax.ClassDeclaration, []string{"B"}},
		{"jsx", `<Item value={v} label="x" />;`, syntax.ExpressionStatement, []string{"Item", "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _ := testsource.Parse(t, tt.src)
			root := testsource.FindKind(t, tree, tt.kind)

			if got := ReferencedNames(tree, root).Slice(); !slices.Equal(got, tt.want) {
				t.Errorf("Expected references %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUses(t *testing.T) {
	t.Parallel()

	tree, body := testsource.Parse(t, `const { data } = response;
if (response.ok) {}
other.response;`)

	decl := body.Child(0)
	skipDecl := func(n *syntax.Node) bool { return n == decl }

	if !Uses(tree, body, "response", skipDecl) {
		t.Error("Expected use of response in if condition")
	}

	if Uses(tree, body, "data", nil) {
		t.Error("Unexpected use of data")
	}

	if Uses(tree, body.Child(2), "response", nil) {
		t.Error("Member property counted as use")
	}
}

func TestLocalBindings(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, `useEffect((p, { q }) => {
  const { a } = x;
  let [b, ...c] = y;
  function d(e) {}
  class F {}
  try {} catch (g) {}
  for (const h of list) {}
  items.map(i => i);
}, []);`)

	fn := testsource.FindKind(t, tree, syntax.ArrowFunction)
	decl := testsource.FindKind(t, tree, syntax.LexicalDeclaration)

	got := LocalBindings(tree, fn, func(n *syntax.Node) bool { return n == decl }).Slice()
	if want := []string{"p", "q", "b", "c", "d", "e", "F", "g", "h", "i"}; !slices.Equal(got, want) {
		t.Errorf("Expected bindings %q, got %q", want, got)
	}
}

func TestWrites(t *testing.T) {
	t.Parallel()

	tree, body := testsource.Parse(t, `a = 1; b += 2; c++; [d, e.f] = g; for (h in o) {} for (const i of o) {} j.k = 3;`)

	if got, want := Writes(tree, body).Slice(), []string{"a", "b", "c", "d", "h"}; !slices.Equal(got, want) {
		t.Errorf("Expected writes %q, got %q", want, got)
	}
}

func TestBoundNames(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, `const { a, b: { c = a }, d: [e, a] } = o;`)

	pattern := testsource.FindKind(t, tree, syntax.ObjectPattern)
	if got, want := BoundNames(tree, pattern).Slice(), []string{"a", "c", "e"}; !slices.Equal(got, want) {
		t.Errorf("Expected bound names %q, got %q", want, got)
	}
}
