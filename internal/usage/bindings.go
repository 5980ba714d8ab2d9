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

package usage

import (
	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/syntax"
)

// BoundNames returns the names bound by a binding target in first-seen order.
func BoundNames(tree *syntax.Tree, target *syntax.Node) *astutil.Names {
	names := &astutil.Names{}
	for id := range syntax.Bindings(target) {
		names.Add(tree.Text(id))
	}

	return names
}

// LocalBindings returns every name bound anywhere within fn, including fn's own parameters
// and the declarations of nested functions, classes and blocks.
// Subtrees for which skip returns true are not visited.
func LocalBindings(tree *syntax.Tree, fn *syntax.Node, skip func(*syntax.Node) bool) *astutil.Names {
	names := &astutil.Names{}
	add := func(target *syntax.Node) {
		for id := range syntax.Bindings(target) {
			names.Add(tree.Text(id))
		}
	}

	syntax.Inspect(fn, func(n *syntax.Node) bool {
		if skip != nil && skip(n) {
			return false
		}

		switch k := n.Kind(); {
		case syntax.IsFunction(k):
			if k != syntax.MethodDefinition {
				add(n.ChildByField("name"))
			}

			for p := range syntax.Parameters(n) {
				add(p)
			}

		case k == syntax.Class || k == syntax.ClassDeclaration:
			add(n.ChildByField("name"))

		case k == syntax.VariableDeclarator:
			add(n.ChildByField("name"))

		case k == syntax.CatchClause:
			add(n.ChildByField("parameter"))

		case k == syntax.ForInStatement:
			if n.Has(syntax.Declare) {
				add(n.ChildByField("left"))
			}

		case syntax.IsType(k):
			return false
		}

		return true
	})

	return names
}

// Writes returns the names assigned to within root, by assignment, update or for-in/of targets.
func Writes(tree *syntax.Tree, root *syntax.Node) *astutil.Names {
	names := &astutil.Names{}
	add := func(target *syntax.Node) {
		target = syntax.Unwrap(target)
		if target == nil {
			return
		}

		for id := range syntax.Bindings(target) {
			names.Add(tree.Text(id))
		}
	}

	for n := range syntax.Preorder(root) {
		switch n.Kind() {
		case syntax.AssignmentExpression, syntax.AugmentedAssignmentExpression:
			add(n.ChildByField("left"))

		case syntax.UpdateExpression:
			add(n.ChildByField("argument"))

		case syntax.ForInStatement:
			if !n.Has(syntax.Declare) {
				add(n.ChildByField("left"))
			}
		}
	}

	return names
}
