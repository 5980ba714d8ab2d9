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

package scope

import "fillmore-labs.com/hoistguard/internal/syntax"

// NewIndex builds the scopes of a parsed file.
func NewIndex(tree *syntax.Tree) *Index {
	x := &Index{byNode: make(map[*syntax.Node]*Scope)}
	b := builder{index: x, tree: tree}
	b.build(tree.Root)

	return x
}

type builder struct {
	index *Index
	tree  *syntax.Tree
}

type frame struct {
	node  *syntax.Node
	scope *Scope
}

func (b *builder) newScope(kind Kind, n *syntax.Node, upper *Scope) *Scope {
	s := &Scope{ID: ID(len(b.index.scopes)), Kind: kind, Node: n, Upper: upper}
	b.index.scopes = append(b.index.scopes, s)
	b.index.byNode[n] = s

	return s
}

func (b *builder) build(root *syntax.Node) {
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		stack = stack[:top]

		inner := b.visit(f.node, f.scope)

		children := f.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], scope: inner})
		}
	}
}

// visit declares the bindings introduced by n and returns the scope for its children.
func (b *builder) visit(n *syntax.Node, cur *Scope) *Scope {
	switch k := n.Kind(); {
	case k == syntax.Program:
		return b.newScope(Module, n, cur)

	case syntax.IsFunction(k):
		if k == syntax.FunctionDeclaration || k == syntax.GeneratorFunctionDeclaration {
			b.declare(cur, n.ChildByField("name"))
		}

		s := b.newScope(Function, n, cur)

		if k == syntax.FunctionExpression || k == syntax.Function || k == syntax.GeneratorFunction {
			b.declare(s, n.ChildByField("name"))
		}

		for p := range syntax.Parameters(n) {
			b.declare(s, p)
		}

		return s

	case k == syntax.ClassDeclaration:
		b.declare(cur, n.ChildByField("name"))

		return b.newScope(Class, n, cur)

	case k == syntax.Class:
		s := b.newScope(Class, n, cur)
		b.declare(s, n.ChildByField("name"))

		return s

	case k == syntax.StatementBlock:
		if p := n.Parent(); p != nil && syntax.IsFunction(p.Kind()) && n.Field() == "body" {
			return cur // function body shares the function scope
		}

		return b.newScope(Block, n, cur)

	case k == syntax.ForStatement || k == syntax.SwitchBody:
		return b.newScope(Block, n, cur)

	case k == syntax.ForInStatement:
		s := b.newScope(Block, n, cur)
		if n.Has(syntax.Declare) {
			b.declare(s, n.ChildByField("left"))
		}

		return s

	case k == syntax.CatchClause:
		s := b.newScope(Catch, n, cur)
		b.declare(s, n.ChildByField("parameter"))

		return s

	case k == syntax.VariableDeclaration:
		target := cur.Hoisting()
		for _, d := range n.Children() {
			if d.Kind() == syntax.VariableDeclarator {
				b.declare(target, d.ChildByField("name"))
			}
		}

	case k == syntax.LexicalDeclaration:
		for _, d := range n.Children() {
			if d.Kind() == syntax.VariableDeclarator {
				b.declare(cur, d.ChildByField("name"))
			}
		}

	case k == syntax.ImportStatement:
		b.declareImports(n, cur)

		return cur

	case k == syntax.EnumDeclaration:
		b.declare(cur, n.ChildByField("name"))
	}

	return cur
}

// declareImports declares the local names of an import statement.
func (b *builder) declareImports(n *syntax.Node, cur *Scope) {
	for c := range syntax.Preorder(n) {
		switch c.Kind() {
		case syntax.ImportSpecifier:
			id := c.ChildByField("alias")
			if id == nil {
				id = c.ChildByField("name")
			}

			if id != nil && id.Kind() == syntax.Identifier {
				cur.declare(id, b.tree.Text(id))
			}

		case syntax.Identifier:
			switch c.Parent().Kind() {
			case syntax.ImportClause, syntax.NamespaceImport:
				cur.declare(c, b.tree.Text(c))
			}
		}
	}
}

// declare binds the identifiers of a binding target in s.
func (b *builder) declare(s *Scope, target *syntax.Node) {
	if s == nil || target == nil {
		return
	}

	for id := range syntax.Bindings(target) {
		s.declare(id, b.tree.Text(id))
	}
}
