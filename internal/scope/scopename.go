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

package scope

import "fillmore-labs.com/hoistguard/internal/syntax"

// Name returns a human-readable name for the scope type.
func Name(s *Scope) string {
	if s == nil {
		return "<nil>"
	}

	switch s.Node.Kind() {
	// keep-sorted start newline_separated=yes
	case syntax.ArrowFunction:
		return "arrow function"

	case syntax.CatchClause:
		return "catch"

	case syntax.Class, syntax.ClassDeclaration:
		return "class"

	case syntax.ForInStatement:
		return "for in"

	case syntax.ForStatement:
		return "for"

	case syntax.MethodDefinition:
		return "method"

	case syntax.Program:
		return "module"

	case syntax.StatementBlock:
		return "block"

	case syntax.SwitchBody:
		return "switch"

	default:
		if syntax.IsFunction(s.Node.Kind()) {
			return "function"
		}

		return s.Node.Type()
		// keep-sorted end
	}
}
