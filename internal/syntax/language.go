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

import (
	"errors"
	"path/filepath"
	"strings"
)

// Language selects the grammar used for parsing.
type Language string

// Supported languages.
const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
)

var (
	// ErrNoCGO is returned when parsing is unavailable due to missing CGO.
	ErrNoCGO = errors.New("parsing requires CGO (tree-sitter)")

	// ErrSyntax is returned for sources that do not parse cleanly.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupported is returned for an unknown language.
	ErrUnsupported = errors.New("unsupported language")
)

// LanguageFromExtension returns the language for a file name.
func LanguageFromExtension(filename string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return JavaScript, true

	case ".ts", ".mts", ".cts":
		return TypeScript, true

	case ".tsx":
		return TSX, true

	default:
		return "", false
	}
}

// kindByType maps grammar node type names to kinds.
var kindByType = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := range Kind(numKinds) {
		m[k.String()] = k
	}

	delete(m, Other.String())

	return m
}()

// KindOf returns the kind for a grammar node type name.
func KindOf(typ string) Kind {
	if k, ok := kindByType[typ]; ok {
		return k
	}

	return Other
}

// childFields lists, per kind, the grammar fields whose children are tagged with a field name.
var childFields = map[Kind][]string{
	VariableDeclarator:            {"name", "type", "value"},
	PairPattern:                   {"key", "value"},
	ObjectAssignmentPattern:       {"left", "right"},
	AssignmentPattern:             {"left", "right"},
	Pair:                          {"key", "value"},
	MemberExpression:              {"object", "property", "optional_chain"},
	SubscriptExpression:           {"object", "index", "optional_chain"},
	CallExpression:                {"function", "type_arguments", "arguments", "optional_chain"},
	NewExpression:                 {"constructor", "type_arguments", "arguments"},
	ArrowFunction:                 {"type_parameters", "parameter", "parameters", "return_type", "body"},
	FunctionExpression:            {"name", "type_parameters", "parameters", "return_type", "body"},
	Function:                      {"name", "type_parameters", "parameters", "return_type", "body"},
	FunctionDeclaration:           {"name", "type_parameters", "parameters", "return_type", "body"},
	GeneratorFunction:             {"name", "type_parameters", "parameters", "return_type", "body"},
	GeneratorFunctionDeclaration:  {"name", "type_parameters", "parameters", "return_type", "body"},
	MethodDefinition:              {"name", "type_parameters", "parameters", "return_type", "body"},
	Class:                         {"name", "type_parameters", "body"},
	ClassDeclaration:              {"name", "type_parameters", "body"},
	IfStatement:                   {"condition", "consequence", "alternative"},
	ForStatement:                  {"initializer", "condition", "increment", "body"},
	ForInStatement:                {"left", "right", "body"},
	WhileStatement:                {"condition", "body"},
	DoStatement:                   {"body", "condition"},
	TryStatement:                  {"body", "handler", "finalizer"},
	CatchClause:                   {"parameter", "type", "body"},
	FinallyClause:                 {"body"},
	SwitchStatement:               {"value", "body"},
	SwitchCase:                    {"value"},
	LabeledStatement:              {"label", "body"},
	AssignmentExpression:          {"left", "right"},
	AugmentedAssignmentExpression: {"left", "right"},
	UpdateExpression:              {"argument"},
	RequiredParameter:             {"pattern", "type", "value"},
	OptionalParameter:             {"pattern", "type", "value"},
	ImportSpecifier:               {"name", "alias"},
	ExportStatement:               {"declaration", "value", "source"},
	JSXOpeningElement:             {"name"},
	JSXClosingElement:             {"name"},
	JSXSelfClosingElement:         {"name"},
	TypeAliasDeclaration:          {"name", "type_parameters", "value"},
	InterfaceDeclaration:          {"name", "type_parameters", "body"},
	EnumDeclaration:               {"name", "body"},
}

// ChildFields returns the grammar fields recorded for nodes of kind k.
func ChildFields(k Kind) []string { return childFields[k] }
