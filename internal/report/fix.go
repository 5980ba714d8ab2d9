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

package report

import (
	"regexp"
	"strings"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/edit"
	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/usage"
)

// createEdits creates the edit script hoisting all groups of a hook call above the
// insertion statement, rewriting the dependency array and removing the original declarations.
func createEdits(cf astutil.CurrentFile, call target.HookCall, groups *target.Groups, insertion *syntax.Node) edit.Script {
	tree := cf.Tree()

	edits := make(edit.Script, 0, 2+len(groups.List))
	edits = append(edits,
		insertEdit(cf, insertion, HoistedStatements(groups)),
		edit.Replace(call.Deps.Start(), call.Deps.End(), "["+strings.Join(Dependencies(tree, call, groups), ", ")+"]"),
	)

	for _, g := range groups.List {
		for _, decl := range g.Decls {
			start, end := RemovalRange(cf, decl)
			edits = append(edits, edit.Delete(start, end))
		}
	}

	edits.Sort()

	return edits
}

// HoistedStatements renders one declaration per group, in group order.
func HoistedStatements(groups *target.Groups) []string {
	lines := make([]string, 0, len(groups.List))
	for _, g := range groups.List {
		lines = append(lines, "const "+g.Pattern()+" = ("+g.ObjectText+") ?? {};")
	}

	return lines
}

// insertEdit places lines before the insertion statement, indented like its line.
func insertEdit(cf astutil.CurrentFile, insertion *syntax.Node, lines []string) edit.Edit {
	pos := insertion.Start()
	indent := cf.Indentation(pos)
	lineStart := cf.LineStart(pos)

	var b strings.Builder

	if len(indent) == pos-lineStart { // statement starts its line
		for _, l := range lines {
			b.WriteString(indent) // ignore error
			b.WriteString(l)      // ignore error
			b.WriteByte('\n')     // ignore error
		}

		return edit.Insert(lineStart, b.String())
	}

	for _, l := range lines {
		b.WriteString(l)      // ignore error
		b.WriteByte('\n')     // ignore error
		b.WriteString(indent) // ignore error
	}

	return edit.Insert(pos, b.String())
}

// Dependencies computes the new dependency list.
//
// An entry destructured by a group is dropped when the callback no longer reads the
// group's base identifier outside the removed declarations. The names bound by the
// groups are appended in first-seen order.
func Dependencies(tree *syntax.Tree, call target.HookCall, groups *target.Groups) []string {
	deps := make([]string, 0, len(call.DepTexts)+groups.Dependencies().Len())
	kept := &astutil.Names{}

	for _, text := range call.DepTexts {
		if g, ok := groups.Lookup(text); ok && g.Base != "" &&
			!usage.Uses(tree, call.Body, g.Base, groups.IsRemoved) {
			continue
		}

		deps = append(deps, text)
		kept.Add(text)
	}

	for name := range groups.Dependencies().All() {
		if kept.Add(name) {
			deps = append(deps, name)
		}
	}

	return deps
}

var trailingDead = regexp.MustCompile(`^[\t\r ;]*$`)

// RemovalRange returns the range to delete for a removed declaration.
//
// A declaration alone on its line is removed with the whole line. Otherwise the
// statement is removed up to the end of the line if only semicolons and blanks
// follow, or with a single trailing space.
func RemovalRange(cf astutil.CurrentFile, n *syntax.Node) (start, end int) {
	tree := cf.Tree()
	start, end = n.Start(), n.End()

	lineStart, lineEnd := cf.LineStart(start), cf.LineEnd(end)

	next := lineEnd
	if next < len(tree.Source) {
		next++ // newline
	}

	leading := tree.Slice(lineStart, start)
	trailing := tree.Slice(end, lineEnd)

	switch {
	case strings.Trim(leading, " \t") == "" && trailingDead.MatchString(trailing):
		return lineStart, next

	case trailingDead.MatchString(trailing):
		return start, next

	case end < len(tree.Source) && tree.Source[end] == ' ':
		return start, end + 1

	default:
		return start, end
	}
}
