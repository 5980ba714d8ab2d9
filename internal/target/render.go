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
	"strings"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// RenderProperty renders one element of an object pattern in canonical form.
//
// Nested object and array patterns without a default get a synthetic "= {}" or
// "= []" so the hoisted destructuring tolerates missing intermediate values.
// Equal subtrees render to equal text, so the result serves as a de-duplication key.
func RenderProperty(tree *syntax.Tree, p *syntax.Node) string {
	var b strings.Builder
	renderProperty(&b, tree, p)

	return b.String()
}

// PropertyKey returns the key an object pattern element reads: the identifier
// of shorthand properties, the unquoted key of string keys, and "..." plus the
// target for rest elements.
func PropertyKey(tree *syntax.Tree, p *syntax.Node) string {
	switch p.Kind() {
	case syntax.ShorthandPropertyIdentifierPattern:
		return tree.Text(p)

	case syntax.ObjectAssignmentPattern:
		return tree.Text(p.ChildByField("left"))

	case syntax.PairPattern:
		key := p.ChildByField("key")
		if key.Type() == "string" {
			return strings.Trim(tree.Text(key), `"'`)
		}

		return tree.Text(key)

	case syntax.RestPattern:
		return "..." + tree.Text(p.Child(0))

	default:
		return tree.Text(p)
	}
}

func renderProperty(b *strings.Builder, tree *syntax.Tree, p *syntax.Node) {
	switch p.Kind() {
	case syntax.ShorthandPropertyIdentifierPattern:
		b.WriteString(tree.Text(p)) // ignore error

	case syntax.ObjectAssignmentPattern: // name = default
		renderTarget(b, tree, p.ChildByField("left"))
		b.WriteString(" = ")                              // ignore error
		b.WriteString(tree.Text(p.ChildByField("right"))) // ignore error

	case syntax.PairPattern:
		renderPair(b, tree, p)

	case syntax.RestPattern:
		b.WriteString("...") // ignore error
		renderTarget(b, tree, p.Child(0))

	default:
		b.WriteString(tree.Text(p)) // ignore error
	}
}

func renderPair(b *strings.Builder, tree *syntax.Tree, p *syntax.Node) {
	key, value := p.ChildByField("key"), p.ChildByField("value")

	if value.Kind() == syntax.AssignmentPattern {
		left, right := value.ChildByField("left"), value.ChildByField("right")
		if key.Kind() == syntax.PropertyIdentifier && left.Kind() == syntax.Identifier &&
			tree.Text(key) == tree.Text(left) {
			b.WriteString(tree.Text(key)) // ignore error
		} else {
			renderKey(b, tree, key)
			b.WriteString(": ") // ignore error
			renderTarget(b, tree, left)
		}

		b.WriteString(" = ")            // ignore error
		b.WriteString(tree.Text(right)) // ignore error

		return
	}

	renderKey(b, tree, key)
	b.WriteString(": ") // ignore error
	renderElement(b, tree, value)
}

func renderKey(b *strings.Builder, tree *syntax.Tree, key *syntax.Node) {
	if key.Kind() != syntax.ComputedPropertyName {
		b.WriteString(tree.Text(key)) // ignore error

		return
	}

	b.WriteByte('[')                       // ignore error
	b.WriteString(tree.Text(key.Child(0))) // ignore error
	b.WriteByte(']')                       // ignore error
}

// renderElement renders a pattern in value position, adding a synthetic default to nested patterns.
func renderElement(b *strings.Builder, tree *syntax.Tree, n *syntax.Node) {
	switch n.Kind() {
	case syntax.ObjectPattern:
		renderObject(b, tree, n)
		b.WriteString(" = {}") // ignore error

	case syntax.ArrayPattern:
		renderArray(b, tree, n)
		b.WriteString(" = []") // ignore error

	case syntax.AssignmentPattern:
		renderTarget(b, tree, n.ChildByField("left"))
		b.WriteString(" = ")                              // ignore error
		b.WriteString(tree.Text(n.ChildByField("right"))) // ignore error

	case syntax.RestPattern:
		b.WriteString("...") // ignore error
		renderTarget(b, tree, n.Child(0))

	default:
		b.WriteString(tree.Text(n)) // ignore error
	}
}

// renderTarget renders a binding target without adding a default.
func renderTarget(b *strings.Builder, tree *syntax.Tree, n *syntax.Node) {
	switch n.Kind() {
	case syntax.ObjectPattern:
		renderObject(b, tree, n)

	case syntax.ArrayPattern:
		renderArray(b, tree, n)

	default:
		b.WriteString(tree.Text(n)) // ignore error
	}
}

func renderObject(b *strings.Builder, tree *syntax.Tree, n *syntax.Node) {
	if n.NumChildren() == 0 {
		b.WriteString("{}") // ignore error

		return
	}

	b.WriteString("{ ") // ignore error

	for i, p := range n.Children() {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		renderProperty(b, tree, p)
	}

	b.WriteString(" }") // ignore error
}

func renderArray(b *strings.Builder, tree *syntax.Tree, n *syntax.Node) {
	b.WriteByte('[') // ignore error

	pos := n.Start() + 1
	for i, e := range n.Children() {
		holes := strings.Count(tree.Slice(pos, e.Start()), ",")
		if i > 0 {
			holes--
		}

		for range holes {
			b.WriteString(", ") // ignore error
		}

		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		renderElement(b, tree, e)

		pos = e.End()
	}

	b.WriteByte(']') // ignore error
}
