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

package target

import (
	"fillmore-labs.com/hoistguard/internal/syntax"
)

// refCurrent is the mutable field of React refs, which must be read when the hook runs.
const refCurrent = "current"

// Scan finds the destructuring declarations in the callback body of call whose
// initializer is listed in the dependency array.
//
// Nested function and class bodies are not entered. Declarations guarded by a
// conditional testing the same base identifier are skipped, as are destructurings
// of this in callbacks that bind their own receiver.
func Scan(tree *syntax.Tree, call HookCall) []Candidate {
	deps := make(map[string]struct{}, len(call.DepTexts))
	for _, d := range call.DepTexts {
		deps[d] = struct{}{}
	}

	ownThis := call.Callback.Kind() != syntax.ArrowFunction

	var candidates []Candidate

	syntax.Inspect(call.Body, func(n *syntax.Node) bool {
		if syntax.IsBoundary(n.Kind()) {
			return false
		}

		if !n.Is(syntax.LexicalDeclaration, syntax.VariableDeclaration) {
			return true
		}

		if c, ok := candidate(tree, n, deps); ok && (c.Base != "" || !ownThis) {
			candidates = append(candidates, c)
		}

		return true
	})

	return candidates
}

// candidate checks whether decl destructures a dependency.
func candidate(tree *syntax.Tree, decl *syntax.Node, deps map[string]struct{}) (Candidate, bool) {
	if !inStatementList(decl) {
		return Candidate{}, false
	}

	declarator, ok := singleDeclarator(decl)
	if !ok {
		return Candidate{}, false
	}

	pattern, init := declarator.ChildByField("name"), declarator.ChildByField("value")
	if pattern == nil || pattern.Kind() != syntax.ObjectPattern || init == nil {
		return Candidate{}, false
	}

	if hasRest(pattern) || destructuresCurrent(tree, pattern) {
		return Candidate{}, false
	}

	base, ok := RootIdentifier(tree, init)
	if !ok {
		return Candidate{}, false
	}

	depKey, ok := dependencyKey(tree, init, deps)
	if !ok {
		return Candidate{}, false
	}

	if base != "" && (priorGuard(tree, decl, base) || enclosingGuard(tree, decl, base)) {
		return Candidate{}, false
	}

	return Candidate{
		Decl:    decl,
		Pattern: pattern,
		Init:    init,
		DepKey:  depKey,
		Base:    base,
	}, true
}

func inStatementList(decl *syntax.Node) bool {
	parent := decl.Parent()

	return parent != nil && parent.Is(syntax.StatementBlock, syntax.SwitchCase, syntax.SwitchDefault)
}

func singleDeclarator(decl *syntax.Node) (*syntax.Node, bool) {
	var declarator *syntax.Node

	for _, c := range decl.Children() {
		if c.Kind() != syntax.VariableDeclarator {
			continue
		}

		if declarator != nil {
			return nil, false
		}

		declarator = c
	}

	return declarator, declarator != nil
}

func hasRest(pattern *syntax.Node) bool {
	for _, p := range pattern.Children() {
		if p.Kind() == syntax.RestPattern {
			return true
		}
	}

	return false
}

// destructuresCurrent reports whether pattern reads the current field of a ref.
func destructuresCurrent(tree *syntax.Tree, pattern *syntax.Node) bool {
	for _, p := range pattern.Children() {
		if PropertyKey(tree, p) == refCurrent {
			return true
		}
	}

	return false
}

// dependencyKey returns the dependency entry matched by init, either verbatim
// or with assertions and parentheses stripped.
func dependencyKey(tree *syntax.Tree, init *syntax.Node, deps map[string]struct{}) (string, bool) {
	if text := tree.Text(init); contains(deps, text) {
		return text, true
	}

	if text := tree.Text(syntax.Unwrap(init)); contains(deps, text) {
		return text, true
	}

	return "", false
}

func contains(set map[string]struct{}, s string) bool {
	_, ok := set[s]

	return ok
}

// RootIdentifier returns the identifier at the root of an identifier or a
// (possibly optional) member access chain.
//
// Chains rooted at this yield an empty name. Other expressions are not supported.
func RootIdentifier(tree *syntax.Tree, n *syntax.Node) (string, bool) {
	for n != nil {
		n = syntax.Unwrap(n)

		switch n.Kind() {
		case syntax.Identifier:
			return tree.Text(n), true

		case syntax.MemberExpression, syntax.SubscriptExpression:
			n = n.ChildByField("object")

		default:
			if n.Type() == "this" {
				return "", true
			}

			return "", false
		}
	}

	return "", false
}

// priorGuard reports whether an if statement before decl in the same statement
// list tests a member of base.
func priorGuard(tree *syntax.Tree, decl *syntax.Node, base string) bool {
	for s := decl.PrevSibling(); s != nil; s = s.PrevSibling() {
		if s.Kind() != syntax.IfStatement {
			continue
		}

		if testsBase(tree, s.ChildByField("condition"), base, false) {
			return true
		}
	}

	return false
}

// enclosingGuard reports whether decl is nested in an if statement testing base.
func enclosingGuard(tree *syntax.Tree, decl *syntax.Node, base string) bool {
	for a := range decl.Ancestors() {
		if a.Kind() != syntax.IfStatement {
			continue
		}

		if cond := a.ChildByField("condition"); cond != nil && !cond.Contains(decl) && testsBase(tree, cond, base, true) {
			return true
		}
	}

	return false
}

// testsBase reports whether cond contains a member expression rooted at base,
// or, with bare set, base itself.
func testsBase(tree *syntax.Tree, cond *syntax.Node, base string, bare bool) bool {
	if cond == nil {
		return false
	}

	found := false
	syntax.Inspect(cond, func(n *syntax.Node) bool {
		if found {
			return false
		}

		switch n.Kind() {
		case syntax.MemberExpression, syntax.SubscriptExpression:
			if root, ok := RootIdentifier(tree, n); ok && root == base {
				found = true

				return false
			}

		case syntax.Identifier:
			if bare && tree.Text(n) == base {
				found = true

				return false
			}
		}

		return true
	})

	return found
}
