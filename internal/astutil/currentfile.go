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

package astutil

import (
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// hoistguard is the name of the linter.
const hoistguard = "hoistguard"

// RuleName is the ESLint-compatible name of the rule.
const RuleName = "enforce-early-destructuring"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	name      string
	tree      *syntax.Tree
	lines     []int
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed [syntax.Tree].
func NewCurrentFile(name string, tree *syntax.Tree) CurrentFile {
	if tree == nil || tree.Root == nil {
		return CurrentFile{}
	}

	lines := []int{0}
	for i, b := range tree.Source {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}

	generated := isGenerated(tree)

	return CurrentFile{name, tree, lines, generated}
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.name
}

// Tree returns the syntax tree of the file.
func (c CurrentFile) Tree() *syntax.Tree {
	return c.tree
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Position returns the 1-based line and column of a byte offset.
func (c CurrentFile) Position(offset int) (line, column int) {
	i, found := slices.BinarySearch(c.lines, offset)
	if !found {
		i--
	}

	return i + 1, offset - c.lines[i] + 1
}

// LineStart returns the offset of the first byte of the line containing offset.
func (c CurrentFile) LineStart(offset int) int {
	line, _ := c.Position(offset)

	return c.lines[line-1]
}

// LineEnd returns the offset of the newline terminating the line containing offset,
// or the length of the source for the last line.
func (c CurrentFile) LineEnd(offset int) int {
	line, _ := c.Position(offset)
	if line < len(c.lines) {
		return c.lines[line] - 1
	}

	return len(c.tree.Source)
}

// Indentation returns the leading whitespace of the line containing offset.
func (c CurrentFile) Indentation(offset int) string {
	start := c.LineStart(offset)

	prefix := c.tree.Slice(start, offset)
	trimmed := strings.TrimLeft(prefix, " \t")

	return prefix[:len(prefix)-len(trimmed)]
}

// lineText returns the text of a 1-based line without its newline.
func (c CurrentFile) lineText(line int) string {
	if line < 1 || line > len(c.lines) {
		return ""
	}

	start, end := c.lines[line-1], len(c.tree.Source)
	if line < len(c.lines) {
		end = c.lines[line] - 1
	}

	return c.tree.Slice(start, end)
}

// NoLintComment checks whether the line of n carries a `// nolint:hoistguard` or `// eslint-disable-line` comment,
// or the previous line an `// eslint-disable-next-line` comment.
func (c CurrentFile) NoLintComment(n *syntax.Node) bool {
	if c.tree == nil {
		return false
	}

	line, _ := c.Position(n.Start())

	current := c.lineText(line)
	if LineHasNoLint(current) || lineDisables(current, false) {
		return true
	}

	return lineDisables(c.lineText(line-1), true)
}

var (
	nolintPattern  = regexp.MustCompile(`//\s*nolint:([a-zA-Z0-9,_-]+)`)
	disablePattern = regexp.MustCompile(`(?://|/\*)\s*eslint-disable-(next-)?line\b([^*\n]*)`)
)

// LineHasNoLint checks if the provided line contains a `//nolint:hoistguard` directive.
func LineHasNoLint(line string) bool {
	matches := nolintPattern.FindStringSubmatch(line)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == hoistguard || l == "all" {
			return true
		}
	}

	return false
}

// lineDisables checks for an ESLint disable directive covering the rule.
func lineDisables(line string, next bool) bool {
	for _, matches := range disablePattern.FindAllStringSubmatch(line, -1) {
		if (matches[1] != "") != next {
			continue
		}

		rules := matches[2]
		if i := strings.Index(rules, "--"); i >= 0 {
			rules = rules[:i] // description
		}

		rules = strings.TrimSpace(rules)
		if rules == "" {
			return true
		}

		for rule := range strings.SplitSeq(rules, ",") {
			rule = strings.TrimSpace(rule)
			if rule == RuleName || strings.HasSuffix(rule, "/"+RuleName) {
				return true
			}
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`(?m)@generated\b|^\s*//\s*Code generated .* DO NOT EDIT\.$`)

// isGenerated reports whether the leading comments of the file mark it as generated.
func isGenerated(tree *syntax.Tree) bool {
	end := len(tree.Source)
	if first := tree.Root.Child(0); first != nil {
		end = first.Start()
	}

	return generatedPattern.MatchString(tree.Slice(0, end))
}
