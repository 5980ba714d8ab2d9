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

//go:build cgo

package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parser wraps tree-sitter for JavaScript and TypeScript parsing.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new tree-sitter parser.
func NewParser() *Parser {
	return &Parser{
		parser: sitter.NewParser(),
	}
}

// Parse parses source code and returns the converted syntax tree.
func (p *Parser) Parse(ctx context.Context, source []byte, lang Language) (*Tree, error) {
	tsLang, err := getLanguage(lang)
	if err != nil {
		return nil, err
	}

	p.parser.SetLanguage(tsLang)

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s source: %w", lang, ErrSyntax)
	}

	return &Tree{Root: convert(root), Source: source, Language: lang}, nil
}

// IsAvailable returns whether parsing is available.
func IsAvailable() bool { return true }

// getLanguage returns the tree-sitter Language for a given language identifier.
func getLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case JavaScript:
		return javascript.GetLanguage(), nil

	case TypeScript:
		return typescript.GetLanguage(), nil

	case TSX:
		return tsx.GetLanguage(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, lang)
	}
}

type pending struct {
	node   *sitter.Node
	parent *Node
	field  string
}

// convert copies the named nodes of a tree-sitter tree into an immutable [Node] tree.
func convert(root *sitter.Node) *Node {
	var result *Node

	stack := []pending{{node: root}}
	for len(stack) > 0 {
		top := len(stack) - 1
		p := stack[top]
		stack = stack[:top]

		typ := p.node.Type()
		n := &Node{
			kind:   KindOf(typ),
			typ:    typ,
			start:  int(p.node.StartByte()),
			end:    int(p.node.EndByte()),
			parent: p.parent,
			field:  p.field,
		}

		if p.parent == nil {
			result = n
		} else {
			n.index = len(p.parent.children)
			p.parent.children = append(p.parent.children, n)
		}

		fields := fieldsOf(p.node, n.kind)

		var children []pending
		for i := range int(p.node.ChildCount()) {
			c := p.node.Child(i)
			if c == nil {
				continue
			}

			if !c.IsNamed() {
				n.flags |= tokenFlag(n.kind, c.Type())

				continue
			}

			ctyp := c.Type()
			if KindOf(ctyp) == Comment {
				continue
			}

			if ctyp == "optional_chain" {
				n.flags |= Optional
			}

			children = append(children, pending{node: c, parent: n, field: fields[spanOf(c)]})
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return result
}

type span struct {
	start, end uint32
	typ        string
}

func spanOf(n *sitter.Node) span {
	return span{start: n.StartByte(), end: n.EndByte(), typ: n.Type()}
}

// fieldsOf resolves the field names of the children of n using the per-kind field table.
func fieldsOf(n *sitter.Node, k Kind) map[span]string {
	names := childFields[k]
	if len(names) == 0 {
		return nil
	}

	fields := make(map[span]string, len(names))
	for _, name := range names {
		if c := n.ChildByFieldName(name); c != nil {
			fields[spanOf(c)] = name
		}
	}

	return fields
}

// tokenFlag translates anonymous tokens into node flags.
func tokenFlag(k Kind, token string) Flags {
	switch token {
	case "async":
		return Async

	case "*":
		switch k {
		case FunctionExpression, Function, FunctionDeclaration,
			GeneratorFunction, GeneratorFunctionDeclaration, MethodDefinition:
			return Generator
		}

	case "?.":
		return Optional

	case "const":
		switch k {
		case LexicalDeclaration:
			return Const

		case ForInStatement:
			return Declare
		}

	case "let", "var":
		if k == ForInStatement {
			return Declare
		}
	}

	return 0
}
