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

// IsPattern reports whether k is a destructuring pattern.
func IsPattern(k Kind) bool {
	switch k {
	case ObjectPattern, ArrayPattern, AssignmentPattern, ObjectAssignmentPattern, RestPattern:
		return true

	default:
		return false
	}
}

// Bindings yields the identifiers bound by a binding target, in source order.
//
// The target is an identifier, a destructuring pattern, a pattern element, or a
// TypeScript parameter. Default values and computed keys are not visited.
func Bindings(target *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if target == nil {
			return
		}

		stack := []*Node{target}
		for len(stack) > 0 {
			top := len(stack) - 1
			n := stack[top]
			stack = stack[:top]

			var next []*Node

			switch n.Kind() {
			case Identifier, ShorthandPropertyIdentifierPattern,
				TypeIdentifier: // TypeScript class names
				if !yield(n) {
					return
				}

			case ObjectPattern, ArrayPattern, RestPattern:
				next = n.Children()

			case PairPattern:
				next = []*Node{n.ChildByField("value")}

			case AssignmentPattern, ObjectAssignmentPattern:
				next = []*Node{n.ChildByField("left")}

			case RequiredParameter, OptionalParameter:
				next = []*Node{n.ChildByField("pattern")}

			default:
				// Member expressions in assignment targets, type annotations.
			}

			for i := len(next) - 1; i >= 0; i-- {
				if next[i] != nil {
					stack = append(stack, next[i])
				}
			}
		}
	}
}

// Parameters yields the parameter nodes of a function.
func Parameters(fn *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if p := fn.ChildByField("parameter"); p != nil {
			yield(p)

			return
		}

		params := fn.ChildByField("parameters")
		if params == nil {
			return
		}

		for _, p := range params.Children() {
			if IsType(p.Kind()) {
				continue
			}

			if !yield(p) {
				return
			}
		}
	}
}
