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
	"slices"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// DefaultHooks are the memoization-style hooks analyzed by default.
var DefaultHooks = []string{"useEffect", "useMemo", "useCallback", "useLayoutEffect"}

// Hooks is a set of hook names.
type Hooks map[string]struct{}

// NewHooks creates a [Hooks] set.
func NewHooks(names ...string) Hooks {
	h := make(Hooks, len(names))
	for _, name := range names {
		h[name] = struct{}{}
	}

	return h
}

// Names returns the sorted hook names.
func (h Hooks) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// MatchHook checks whether call is a hook call with a synchronous block-bodied callback
// and an array literal of dependencies.
func (h Hooks) MatchHook(tree *syntax.Tree, call *syntax.Node) (HookCall, bool) {
	if call.Kind() != syntax.CallExpression || call.Has(syntax.Optional) {
		return HookCall{}, false
	}

	callee := call.ChildByField("function")
	if callee == nil || callee.Kind() != syntax.Identifier {
		return HookCall{}, false
	}

	name := tree.Text(callee)
	if _, ok := h[name]; !ok {
		return HookCall{}, false
	}

	args := call.ChildByField("arguments")
	if args == nil || args.Kind() != syntax.Arguments || args.NumChildren() < 2 {
		return HookCall{}, false
	}

	callback := args.Child(0)
	switch callback.Kind() {
	case syntax.ArrowFunction, syntax.FunctionExpression, syntax.Function:
	default:
		return HookCall{}, false
	}

	if callback.Has(syntax.Async) {
		return HookCall{}, false
	}

	body := callback.ChildByField("body")
	if body == nil || body.Kind() != syntax.StatementBlock {
		return HookCall{}, false
	}

	deps := args.Child(1)
	if deps.Kind() != syntax.Array {
		return HookCall{}, false
	}

	depTexts := make([]string, 0, deps.NumChildren())
	for _, d := range deps.Children() {
		depTexts = append(depTexts, tree.Text(d))
	}

	return HookCall{
		Call:     call,
		Name:     name,
		Callback: callback,
		Body:     body,
		Deps:     deps,
		DepTexts: depTexts,
	}, true
}

// InsertionPoint returns the statement containing the hook call whose parent is a
// statement block of the same function, or nil.
func (c HookCall) InsertionPoint() *syntax.Node {
	for n := c.Call; n.Parent() != nil; n = n.Parent() {
		parent := n.Parent()
		if parent.Kind() == syntax.StatementBlock {
			return n
		}

		if syntax.IsBoundary(parent.Kind()) {
			return nil
		}
	}

	return nil
}
