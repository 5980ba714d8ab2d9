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

package target

import (
	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/syntax"
)

// HookCall is a memoization-style call whose callback is analyzed.
type HookCall struct {
	Call     *syntax.Node // The call expression
	Name     string       // The callee name (e.g. "useEffect")
	Callback *syntax.Node // The arrow function or function expression passed first
	Body     *syntax.Node // The block body of the callback
	Deps     *syntax.Node // The array literal passed second
	DepTexts []string     // Raw source texts of the dependency entries
}

// Candidate is a destructuring declaration inside a hook callback.
type Candidate struct {
	Decl    *syntax.Node // The lexical or variable declaration statement
	Pattern *syntax.Node // The object pattern of its single declarator
	Init    *syntax.Node // The initializer
	DepKey  string       // The dependency entry text matched by the initializer
	Base    string       // The identifier at the root of the initializer, "" if there is none
}

// Property is one destructured property, canonicalized by its rendered text.
type Property struct {
	Key        string         // Property key text
	Text       string         // Rendered property text
	Order      int            // Source offset of the first occurrence
	BoundNames *astutil.Names // Names bound by this property
	References *astutil.Names // Names read by defaults and computed keys
}

// Group is a set of candidates destructuring the same source object.
type Group struct {
	Key        string         // The dependency entry text
	ObjectText string         // Raw initializer text of the first declaration
	Base       string         // Base identifier, "" if there is none
	Properties []*Property    // Properties in first-seen order
	Names      *astutil.Names // Bound names in first-seen order
	Decls      []*syntax.Node // Declarations to remove
	Inits      []*syntax.Node // Initializers of the removed declarations

	byText map[string]*Property
}

// Groups are the groups of one hook call in discovery order.
type Groups struct {
	List []*Group

	byKey map[string]*Group
}

// Lookup returns the group for a dependency entry text.
func (g *Groups) Lookup(key string) (*Group, bool) {
	group, ok := g.byKey[key]

	return group, ok
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}

	return len(g.List)
}

// Dependencies returns the names bound by all groups in first-seen order.
func (g *Groups) Dependencies() *astutil.Names {
	names := &astutil.Names{}
	for _, group := range g.List {
		names.AddAll(group.Names.All())
	}

	return names
}

// IsRemoved reports whether n is a declaration or initializer of any group.
func (g *Groups) IsRemoved(n *syntax.Node) bool {
	for _, group := range g.List {
		for _, d := range group.Decls {
			if d == n {
				return true
			}
		}

		for _, i := range group.Inits {
			if i == n {
				return true
			}
		}
	}

	return false
}

// IsDecl reports whether n is a declaration of any group.
func (g *Groups) IsDecl(n *syntax.Node) bool {
	for _, group := range g.List {
		for _, d := range group.Decls {
			if d == n {
				return true
			}
		}
	}

	return false
}
