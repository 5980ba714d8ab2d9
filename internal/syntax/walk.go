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

import "iter"

// Inspect traverses the subtree rooted at n in depth-first source order.
// If f returns false, the children of the node are skipped.
func Inspect(n *Node, f func(*Node) bool) {
	if n == nil {
		return
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		top := len(stack) - 1
		node := stack[top]
		stack = stack[:top]

		if !f(node) {
			continue
		}

		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
}

// Preorder yields n and all of its descendants in depth-first source order.
func Preorder(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stop := false
		Inspect(n, func(node *Node) bool {
			if stop {
				return false
			}

			if !yield(node) {
				stop = true

				return false
			}

			return true
		})
	}
}

// Ancestors yields the proper ancestors of n, innermost first.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Enclosing returns the innermost proper ancestor of n with one of the given kinds, or nil.
func (n *Node) Enclosing(kinds ...Kind) *Node {
	for p := range n.Ancestors() {
		if p.Is(kinds...) {
			return p
		}
	}

	return nil
}
