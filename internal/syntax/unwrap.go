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

// IsFunction reports whether k starts a new function body.
func IsFunction(k Kind) bool {
	switch k {
	case ArrowFunction, FunctionExpression, Function, FunctionDeclaration,
		GeneratorFunction, GeneratorFunctionDeclaration, MethodDefinition:
		return true

	default:
		return false
	}
}

// IsBoundary reports whether k is a function or class, whose bodies are analyzed separately.
func IsBoundary(k Kind) bool {
	return IsFunction(k) || k == Class || k == ClassDeclaration
}

// IsWrapper reports whether k is a parenthesized expression or a TypeScript assertion.
func IsWrapper(k Kind) bool {
	switch k {
	case ParenthesizedExpression, NonNullExpression, AsExpression, SatisfiesExpression, TypeAssertion:
		return true

	default:
		return false
	}
}

// IsType reports whether k only contains type information.
func IsType(k Kind) bool {
	switch k {
	case TypeAnnotation, TypeArguments, TypeParameters,
		TypeAliasDeclaration, InterfaceDeclaration, TypeIdentifier:
		return true

	default:
		return false
	}
}

// Wrapped returns the expression inside a wrapper node, or nil if n is not a wrapper.
func Wrapped(n *Node) *Node {
	switch n.Kind() {
	case ParenthesizedExpression, NonNullExpression, AsExpression, SatisfiesExpression:
		return n.Child(0)

	case TypeAssertion: // <T>expr
		return n.Child(n.NumChildren() - 1)

	default:
		return nil
	}
}

// Unwrap strips parentheses and TypeScript assertions (non-null, as, satisfies, angle-bracket) from n.
func Unwrap(n *Node) *Node {
	for n != nil && IsWrapper(n.Kind()) {
		inner := Wrapped(n)
		if inner == nil {
			break
		}

		n = inner
	}

	return n
}
