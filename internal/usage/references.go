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

// Package usage collects identifier references and bindings of syntax subtrees.
package usage

import (
	"iter"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/syntax"
)

type mode uint8

const (
	value   mode = iota // identifiers are references
	binding             // identifiers are bound names
)

type item struct {
	node *syntax.Node
	mode mode
}

// References yields the identifiers read within root, in source order.
//
// Property keys and member properties are not references unless computed. Default
// values and computed keys of patterns are. Type annotations are skipped, and
// TypeScript assertions are transparent. Subtrees for which skip returns true are not visited.
func References(root *syntax.Node, skip func(*syntax.Node) bool) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		if root == nil {
			return
		}

		start := value
		if isBindingRoot(root.Kind()) {
			start = binding
		}

		stack := []item{{root, start}}
		for len(stack) > 0 {
			top := len(stack) - 1
			it := stack[top]
			stack = stack[:top]

			n := it.node
			if n == nil || syntax.IsType(n.Kind()) || (skip != nil && skip(n)) {
				continue
			}

			var next []item
			if it.mode == binding {
				next = bindingChildren(n)
			} else {
				switch n.Kind() {
				case syntax.Identifier, syntax.ShorthandPropertyIdentifier:
					if !yield(n) {
						return
					}

					continue

				default:
					next = valueChildren(n)
				}
			}

			for i := len(next) - 1; i >= 0; i-- {
				stack = append(stack, next[i])
			}
		}
	}
}

// ReferencedNames returns the names read within root.
func ReferencedNames(tree *syntax.Tree, root *syntax.Node) *astutil.Names {
	names := &astutil.Names{}
	for id := range References(root, nil) {
		names.Add(tree.Text(id))
	}

	return names
}

// Uses reports whether name is read within root outside the excluded subtrees.
func Uses(tree *syntax.Tree, root *syntax.Node, name string, exclude func(*syntax.Node) bool) bool {
	for id := range References(root, exclude) {
		if tree.Text(id) == name {
			return true
		}
	}

	return false
}

func isBindingRoot(k syntax.Kind) bool {
	switch k {
	case syntax.PairPattern, syntax.ShorthandPropertyIdentifierPattern:
		return true

	default:
		return syntax.IsPattern(k)
	}
}

// bindingChildren returns the children of a binding target with their modes.
func bindingChildren(n *syntax.Node) []item {
	switch n.Kind() {
	case syntax.Identifier, syntax.ShorthandPropertyIdentifierPattern:
		return nil

	case syntax.ObjectPattern, syntax.ArrayPattern, syntax.RestPattern:
		return withMode(n.Children(), binding)

	case syntax.PairPattern:
		var next []item
		if key := n.ChildByField("key"); key != nil && key.Kind() == syntax.ComputedPropertyName {
			next = append(next, item{key, value})
		}

		return append(next, item{n.ChildByField("value"), binding})

	case syntax.AssignmentPattern, syntax.ObjectAssignmentPattern:
		return []item{{n.ChildByField("left"), binding}, {n.ChildByField("right"), value}}

	case syntax.RequiredParameter, syntax.OptionalParameter:
		return []item{{n.ChildByField("pattern"), binding}, {n.ChildByField("value"), value}}

	default:
		// Member expressions as assignment targets.
		return []item{{n, value}}
	}
}

// valueChildren returns the children of an expression or statement with their modes.
func valueChildren(n *syntax.Node) []item {
	k := n.Kind()

	switch {
	case syntax.IsWrapper(k):
		return []item{{syntax.Wrapped(n), value}}

	case syntax.IsFunction(k):
		var next []item
		if name := n.ChildByField("name"); name != nil && name.Kind() == syntax.ComputedPropertyName {
			next = append(next, item{name, value})
		}

		for p := range syntax.Parameters(n) {
			next = append(next, item{p, binding})
		}

		return append(next, item{n.ChildByField("body"), value})

	case k == syntax.ImportStatement:
		return nil
	}

	switch k {
	case syntax.MemberExpression:
		return []item{{n.ChildByField("object"), value}}

	case syntax.Pair:
		var next []item
		if key := n.ChildByField("key"); key != nil && key.Kind() == syntax.ComputedPropertyName {
			next = append(next, item{key, value})
		}

		return append(next, item{n.ChildByField("value"), value})

	case syntax.VariableDeclarator:
		return []item{{n.ChildByField("name"), binding}, {n.ChildByField("value"), value}}

	case syntax.CatchClause:
		return []item{{n.ChildByField("parameter"), binding}, {n.ChildByField("body"), value}}

	case syntax.ForInStatement:
		left := item{n.ChildByField("left"), value}
		if n.Has(syntax.Declare) {
			left.mode = binding
		}

		return []item{left, {n.ChildByField("right"), value}, {n.ChildByField("body"), value}}

	case syntax.AssignmentExpression:
		left := item{n.ChildByField("left"), value}
		if l := left.node; l != nil && syntax.IsPattern(l.Kind()) {
			left.mode = binding
		}

		return []item{left, {n.ChildByField("right"), value}}

	case syntax.Class, syntax.ClassDeclaration:
		return withMode(without(n.Children(), "name"), value)

	default:
		return withMode(n.Children(), value)
	}
}

func withMode(nodes []*syntax.Node, m mode) []item {
	items := make([]item, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, item{n, m})
	}

	return items
}

func without(nodes []*syntax.Node, field string) []*syntax.Node {
	result := make([]*syntax.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Field() != field {
			result = append(result, n)
		}
	}

	return result
}
