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

// Package testsource provides utilities for parsing JavaScript and TypeScript source code in tests.
//
// It is designed to simplify testing of the hoistguard analyzer by handling common
// boilerplate code for parsing source fragments.
package testsource

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// Header and Footer surround every fragment passed to [Parse].
const (
	Header = "function Component(props) {\n"
	Footer = "\n}\n"
)

// Parse parses a JavaScript source code fragment.
// The provided source `src` is automatically wrapped in a function body `function Component(props) { ... }`.
// This allows testing statement-level code fragments without manually constructing the surrounding
// component scaffolding. Offsets in the returned tree are shifted by len([Header]).
//
// Returns:
//   - *syntax.Tree: The parsed tree of the wrapped source.
//   - *syntax.Node: The statement block of the wrapper function.
func Parse(tb testing.TB, src string) (tree *syntax.Tree, body *syntax.Node) {
	tb.Helper()

	tree = ParseFile(tb, syntax.TSX, wrapSource(src).Bytes())

	for n := range syntax.Preorder(tree.Root) {
		if n.Kind() == syntax.FunctionDeclaration {
			return tree, n.ChildByField("body")
		}
	}

	tb.Fatal("Can't find function")

	return nil, nil
}

// ParseFile parses a complete source file in the given language.
// The test is skipped when parsing is unavailable.
func ParseFile(tb testing.TB, lang syntax.Language, src []byte) *syntax.Tree {
	tb.Helper()

	tree, err := syntax.NewParser().Parse(context.Background(), src, lang)
	if errors.Is(err, syntax.ErrNoCGO) {
		tb.Skip(err)
	}

	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return tree
}

// Find returns the first node of the given kind whose source text is text.
func Find(tb testing.TB, tree *syntax.Tree, kind syntax.Kind, text string) *syntax.Node {
	tb.Helper()

	for n := range syntax.Preorder(tree.Root) {
		if n.Kind() == kind && tree.Text(n) == text {
			return n
		}
	}

	tb.Fatalf("Can't find %s %q", kind, text)

	return nil
}

// FindKind returns the first node of the given kind.
func FindKind(tb testing.TB, tree *syntax.Tree, kind syntax.Kind) *syntax.Node {
	tb.Helper()

	for n := range syntax.Preorder(tree.Root) {
		if n.Kind() == kind {
			return n
		}
	}

	tb.Fatalf("Can't find %s", kind)

	return nil
}

func wrapSource(src string) *bytes.Buffer {
	const wrapperLen = len(Header) + len(Footer)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(Header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(Footer) // ignore error

	return &srcFile
}
