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

package syntax

// Node is an immutable syntax tree element.
//
// Only named nodes are kept; anonymous tokens that carry meaning are recorded as [Flags].
type Node struct {
	kind     Kind
	typ      string
	flags    Flags
	start    int
	end      int
	parent   *Node
	field    string
	index    int
	children []*Node
}

// Flags record anonymous tokens of a node.
type Flags uint8

const (
	// Async marks an async function.
	Async Flags = 1 << iota

	// Generator marks a generator function.
	Generator

	// Optional marks a member access, subscript, or call using optional chaining.
	Optional

	// Const marks a const lexical declaration.
	Const

	// Declare marks a for-in or for-of statement declaring its loop variable.
	Declare
)

// Kind returns the statically typed tag of the node.
func (n *Node) Kind() Kind { return n.kind }

// Type returns the grammar node type name, also for nodes of kind [Other].
func (n *Node) Type() string { return n.typ }

// Is reports whether the node has one of the given kinds.
func (n *Node) Is(kinds ...Kind) bool {
	if n == nil {
		return false
	}

	for _, k := range kinds {
		if n.kind == k {
			return true
		}
	}

	return false
}

// Has reports whether all of the flags are set.
func (n *Node) Has(f Flags) bool { return n.flags&f == f }

// Start returns the byte offset of the first byte of the node.
func (n *Node) Start() int { return n.start }

// End returns the byte offset immediately after the node.
func (n *Node) End() int { return n.end }

// Parent returns the enclosing node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Field returns the name of the field the node occupies in its parent, or "".
func (n *Node) Field() string { return n.field }

// Index returns the position of the node among the named children of its parent.
func (n *Node) Index() int { return n.index }

// Children returns the named children of the node.
// The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of named children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th named child or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}

	return n.children[i]
}

// ChildByField returns the first child occupying field name, or nil.
func (n *Node) ChildByField(name string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.children {
		if c.field == name {
			return c
		}
	}

	return nil
}

// PrevSibling returns the previous named sibling or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}

	return n.parent.Child(n.index - 1)
}

// NextSibling returns the next named sibling or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}

	return n.parent.Child(n.index + 1)
}

// Contains reports whether m lies within the byte range of n.
func (n *Node) Contains(m *Node) bool {
	return n.start <= m.start && m.end <= n.end
}

// Encloses reports whether n is a proper or improper ancestor of m.
func (n *Node) Encloses(m *Node) bool {
	for p := m; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}

	return false
}

// Tree is a parsed source file.
type Tree struct {
	Root     *Node
	Source   []byte
	Language Language
}

// Text returns the raw source text of n.
func (t *Tree) Text(n *Node) string {
	return string(t.Source[n.start:n.end])
}

// Slice returns the raw source text of the byte range [start, end).
func (t *Tree) Slice(start, end int) string {
	return string(t.Source[start:end])
}
