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

import (
	"iter"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// ID identifies a [Scope] within an [Index]. IDs are assigned in source order and are stable for a parsed file.
type ID int

// Scope is a lexical binding table.
type Scope struct {
	ID    ID
	Kind  Kind
	Node  *syntax.Node
	Upper *Scope

	vars  map[string][]*syntax.Node
	names []string
}

// Kind classifies scopes.
type Kind uint8

const (
	// Module is the top level scope of a file.
	Module Kind = iota

	// Function holds parameters, var declarations and the top level declarations of a function body.
	Function

	// Block holds let, const, class and function declarations of a block.
	Block

	// Catch holds the parameter of a catch clause.
	Catch

	// Class holds the name of a named class expression.
	Class
)

// Lookup returns the declaration sites of name in this scope.
func (s *Scope) Lookup(name string) []*syntax.Node {
	return s.vars[name]
}

// Declares reports whether name is declared in this scope.
func (s *Scope) Declares(name string) bool {
	_, ok := s.vars[name]

	return ok
}

// Names yields the names declared in this scope in declaration order.
func (s *Scope) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range s.names {
			if !yield(name) {
				return
			}
		}
	}
}

// Chain yields s and its enclosing scopes up to the module scope.
func (s *Scope) Chain() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for c := s; c != nil; c = c.Upper {
			if !yield(c) {
				return
			}
		}
	}
}

// Resolve returns the innermost scope in the chain declaring name, or nil.
func (s *Scope) Resolve(name string) *Scope {
	for c := range s.Chain() {
		if c.Declares(name) {
			return c
		}
	}

	return nil
}

// Hoisting returns the innermost function or module scope, the target of var declarations.
func (s *Scope) Hoisting() *Scope {
	for c := range s.Chain() {
		if c.Kind == Function || c.Kind == Module {
			return c
		}
	}

	return s
}

func (s *Scope) declare(id *syntax.Node, name string) {
	if s.vars == nil {
		s.vars = make(map[string][]*syntax.Node)
	}

	if _, ok := s.vars[name]; !ok {
		s.names = append(s.names, name)
	}

	s.vars[name] = append(s.vars[name], id)
}

// Index provides scope analysis for a parsed file.
//
// It maps syntax nodes to the scopes they introduce and provides methods to
// find the innermost scope containing a node.
type Index struct {
	scopes []*Scope
	byNode map[*syntax.Node]*Scope
}

// Of returns the scope introduced by n, or nil.
func (x *Index) Of(n *syntax.Node) *Scope {
	return x.byNode[n]
}

// Innermost returns the innermost scope containing n.
func (x *Index) Innermost(n *syntax.Node) *Scope {
	for c := n; c != nil; c = c.Parent() {
		if s, ok := x.byNode[c]; ok {
			return s
		}
	}

	if len(x.scopes) == 0 {
		return nil
	}

	return x.scopes[0]
}
