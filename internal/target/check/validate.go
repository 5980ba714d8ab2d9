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

// Package check validates that hoisting destructuring declarations out of a hook
// callback preserves the meaning of the program.
package check

import (
	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/scope"
	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/usage"
)

// Reserved reports names introduced by earlier hoists.
type Reserved interface {
	Reserved(id scope.ID, name string) bool
}

// Input holds the hook call under validation.
type Input struct {
	Tree     *syntax.Tree
	Scopes   *scope.Index
	Call     target.HookCall
	Groups   *target.Groups
	Reserved Reserved
}

// SafetyCheck runs the validation stages in order and returns the first failure.
// insertion is the statement the hoisted declarations are placed before.
func SafetyCheck(in Input) (status Status, insertion *syntax.Node) {
	insertion = in.Call.InsertionPoint()
	if insertion == nil {
		return HoistBlockedNoInsertionPoint, nil
	}

	if CrossGroupCollision(in.Groups) {
		return HoistBlockedAmbiguous, insertion
	}

	sc := in.Scopes.Innermost(insertion)

	if ReferenceEscapes(in.Tree, in.Call, in.Groups, sc, insertion) {
		return HoistBlockedEscape, insertion
	}

	if status := BindingCollision(in, sc, insertion); status != HoistAllowed {
		return status, insertion
	}

	if DuplicateBinding(in.Groups) {
		return HoistBlockedDuplicate, insertion
	}

	if Reassigned(in.Tree, in.Call, in.Groups) {
		return HoistBlockedAssigned, insertion
	}

	if ReadBeforeDeclaration(in.Tree, in.Call, in.Groups) {
		return HoistBlockedReadBeforeDeclaration, insertion
	}

	return HoistAllowed, insertion
}

// CrossGroupCollision reports whether a name is bound by two different groups.
func CrossGroupCollision(groups *target.Groups) bool {
	owner := make(map[string]*target.Group)

	for _, g := range groups.List {
		for name := range g.Names.All() {
			if o, ok := owner[name]; ok && o != g {
				return true
			}

			owner[name] = g
		}
	}

	return false
}

// ReferenceEscapes reports whether a default value, a computed key or a source
// object refers to a name that is not defined above the insertion point.
//
// Names bound in the callback outside the removed declarations escape, as do names
// bound by later properties or groups, and names declared after the insertion point
// in the same function.
func ReferenceEscapes(tree *syntax.Tree, call target.HookCall, groups *target.Groups, sc *scope.Scope, insertion *syntax.Node) bool {
	local := usage.LocalBindings(tree, call.Callback, groups.IsDecl)

	pending := groups.Dependencies()
	defined := &astutil.Names{}

	escapes := func(names *astutil.Names) bool {
		for name := range names.All() {
			if defined.Has(name) {
				continue
			}

			if local.Has(name) || pending.Has(name) || declaredLater(sc, name, insertion) {
				return true
			}
		}

		return false
	}

	for _, g := range groups.List {
		for _, init := range g.Inits {
			if escapes(usage.ReferencedNames(tree, init)) {
				return true
			}
		}

		for _, p := range g.Sorted() {
			if escapes(p.References) {
				return true
			}

			defined.AddAll(p.BoundNames.All())
		}
	}

	return false
}

// declaredLater reports whether name resolves to a declaration of the same function
// that follows the insertion point and is not hoisted with its value.
func declaredLater(sc *scope.Scope, name string, insertion *syntax.Node) bool {
	decl := sc.Resolve(name)
	if decl == nil || decl.Hoisting() != sc.Hoisting() {
		return false
	}

	for _, id := range decl.Lookup(name) {
		if id.Start() < insertion.Start() {
			return false
		}

		if p := id.Parent(); p != nil && p.Is(syntax.FunctionDeclaration, syntax.GeneratorFunctionDeclaration) {
			return false
		}
	}

	return true
}

// BindingCollision reports whether a hoisted name already exists in the callback,
// in the enclosing scope chain or in the reserved names of the target scope.
func BindingCollision(in Input, sc *scope.Scope, insertion *syntax.Node) Status {
	local := usage.LocalBindings(in.Tree, in.Call.Callback, in.Groups.IsDecl)

	visible := &astutil.Names{}
	for s := range sc.Chain() {
		visible.AddAll(s.Names())
	}

	// Free references elsewhere in the block would be captured by the hoisted declaration.
	block := insertion.Parent()
	isCallback := func(n *syntax.Node) bool { return n == in.Call.Callback }

	for id := range usage.References(block, isCallback) {
		name := in.Tree.Text(id)
		if s := in.Scopes.Innermost(id).Resolve(name); s != nil && s.Node != block && block.Encloses(s.Node) {
			continue // bound inside the block
		}

		visible.Add(name)
	}

	// So would free references in the callback outside the hoisted declarations.
	for id := range usage.References(in.Call.Body, in.Groups.IsDecl) {
		name := in.Tree.Text(id)
		if s := in.Scopes.Innermost(id).Resolve(name); s == nil || !in.Call.Callback.Encloses(s.Node) {
			visible.Add(name)
		}
	}

	for _, g := range in.Groups.List {
		for name := range g.Names.All() {
			switch {
			case local.Has(name):
				return HoistBlockedLocal

			case visible.Has(name):
				return HoistBlockedScope

			case in.Reserved != nil && in.Reserved.Reserved(sc.ID, name):
				return HoistBlockedReserved
			}
		}
	}

	return HoistAllowed
}

// DuplicateBinding reports whether the merged pattern of a group binds a name
// twice, or does not bind every name of the group.
func DuplicateBinding(groups *target.Groups) bool {
	for _, g := range groups.List {
		bound := &astutil.Names{}

		for _, p := range g.Sorted() {
			for name := range p.BoundNames.All() {
				if !bound.Add(name) {
					return true
				}
			}
		}

		if bound.Len() != g.Names.Len() {
			return true
		}

		for name := range g.Names.All() {
			if !bound.Has(name) {
				return true
			}
		}
	}

	return false
}

// Reassigned reports whether a destructured name is assigned to within the callback.
func Reassigned(tree *syntax.Tree, call target.HookCall, groups *target.Groups) bool {
	writes := usage.Writes(tree, call.Body)
	for name := range groups.Dependencies().All() {
		if writes.Has(name) {
			return true
		}
	}

	return false
}

// ReadBeforeDeclaration reports whether a destructured name is referenced in the callback
// before its first declaration.
func ReadBeforeDeclaration(tree *syntax.Tree, call target.HookCall, groups *target.Groups) bool {
	first := make(map[string]int)

	for _, g := range groups.List {
		for _, decl := range g.Decls {
			for name := range usage.LocalBindings(tree, decl, nil).All() {
				if start, ok := first[name]; !ok || decl.Start() < start {
					first[name] = decl.Start()
				}
			}
		}
	}

	for id := range usage.References(call.Body, groups.IsDecl) {
		if start, ok := first[tree.Text(id)]; ok && id.Start() < start {
			return true
		}
	}

	return false
}
