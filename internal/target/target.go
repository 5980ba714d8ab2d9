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

// Package target finds the destructuring declarations inside hook callbacks that
// can be hoisted and groups them by source object.
package target

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// Stage selects hoisting targets in the hook calls of one file.
type Stage struct {
	tree   *syntax.Tree
	hooks  Hooks
	logger *slog.Logger
}

// New creates a [target.Stage].
func New(tree *syntax.Tree, hooks Hooks, logger *slog.Logger) Stage {
	return Stage{tree: tree, hooks: hooks, logger: logger}
}

// HookCalls yields the hook calls of the file in source order.
func (s Stage) HookCalls(ctx context.Context) []HookCall {
	defer trace.StartRegion(ctx, "Scan").End()

	var calls []HookCall

	for n := range syntax.Preorder(s.tree.Root) {
		if n.Kind() != syntax.CallExpression {
			continue
		}

		if call, ok := s.hooks.MatchHook(s.tree, n); ok {
			calls = append(calls, call)
		}
	}

	return calls
}

// SelectGroups scans the callback of call and groups the candidates found.
// It returns nil when there is nothing to hoist.
func (s Stage) SelectGroups(ctx context.Context, call HookCall) *Groups {
	defer trace.StartRegion(ctx, "Group").End()

	candidates := Scan(s.tree, call)
	if len(candidates) == 0 {
		return nil
	}

	groups := BuildGroups(s.tree, candidates)

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		for _, g := range groups.List {
			s.logger.LogAttrs(ctx, slog.LevelDebug, "destructuring group",
				slog.String("hook", call.Name),
				slog.String("object", g.ObjectText),
				slog.Int("declarations", len(g.Decls)),
				slog.Any("names", g.Names.Slice()),
			)
		}
	}

	return groups
}
