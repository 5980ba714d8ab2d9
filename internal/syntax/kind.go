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

// Kind is the statically typed tag of a syntax tree node.
//
// Kinds follow the node type names of the tree-sitter JavaScript and TypeScript grammars.
// Node types without a dedicated kind are tagged [Other].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	Other   Kind = iota // other
	Error               // ERROR
	Comment             // comment
	Program             // program

	// Declarations.
	LexicalDeclaration           // lexical_declaration
	VariableDeclaration          // variable_declaration
	VariableDeclarator           // variable_declarator
	FunctionDeclaration          // function_declaration
	GeneratorFunctionDeclaration // generator_function_declaration
	ClassDeclaration             // class_declaration
	ImportStatement              // import_statement
	ImportClause                 // import_clause
	ImportSpecifier              // import_specifier
	NamespaceImport              // namespace_import
	ExportStatement              // export_statement

	// Statements.
	ExpressionStatement // expression_statement
	StatementBlock      // statement_block
	IfStatement         // if_statement
	ElseClause          // else_clause
	ForStatement        // for_statement
	ForInStatement      // for_in_statement
	WhileStatement      // while_statement
	DoStatement         // do_statement
	TryStatement        // try_statement
	CatchClause         // catch_clause
	FinallyClause       // finally_clause
	SwitchStatement     // switch_statement
	SwitchBody          // switch_body
	SwitchCase          // switch_case
	SwitchDefault       // switch_default
	ReturnStatement     // return_statement
	ThrowStatement      // throw_statement
	LabeledStatement    // labeled_statement
	BreakStatement      // break_statement
	ContinueStatement   // continue_statement

	// Functions and classes.
	ArrowFunction      // arrow_function
	FunctionExpression // function_expression
	Function           // function
	GeneratorFunction  // generator_function
	MethodDefinition   // method_definition
	Class              // class
	ClassBody          // class_body
	FormalParameters   // formal_parameters
	RequiredParameter  // required_parameter
	OptionalParameter  // optional_parameter

	// Patterns.
	ObjectPattern                      // object_pattern
	ArrayPattern                       // array_pattern
	PairPattern                        // pair_pattern
	ObjectAssignmentPattern            // object_assignment_pattern
	AssignmentPattern                  // assignment_pattern
	ShorthandPropertyIdentifierPattern // shorthand_property_identifier_pattern
	RestPattern                        // rest_pattern

	// Expressions.
	Identifier                    // identifier
	PropertyIdentifier            // property_identifier
	ShorthandPropertyIdentifier   // shorthand_property_identifier
	PrivatePropertyIdentifier     // private_property_identifier
	StatementIdentifier           // statement_identifier
	ComputedPropertyName          // computed_property_name
	MemberExpression              // member_expression
	SubscriptExpression           // subscript_expression
	OptionalChain                 // optional_chain
	CallExpression                // call_expression
	NewExpression                 // new_expression
	Arguments                     // arguments
	Array                         // array
	Object                        // object
	Pair                          // pair
	SpreadElement                 // spread_element
	ParenthesizedExpression       // parenthesized_expression
	AssignmentExpression          // assignment_expression
	AugmentedAssignmentExpression // augmented_assignment_expression
	UpdateExpression              // update_expression
	TemplateString                // template_string
	TemplateSubstitution          // template_substitution
	NonNullExpression             // non_null_expression
	AsExpression                  // as_expression
	SatisfiesExpression           // satisfies_expression
	TypeAssertion                 // type_assertion
	JSXExpression                 // jsx_expression
	JSXOpeningElement             // jsx_opening_element
	JSXClosingElement             // jsx_closing_element
	JSXSelfClosingElement         // jsx_self_closing_element
	JSXAttribute                  // jsx_attribute
	JSXNamespaceName              // jsx_namespace_name
	NestedIdentifier              // nested_identifier

	// Types.
	TypeAnnotation       // type_annotation
	TypeArguments        // type_arguments
	TypeParameters       // type_parameters
	TypeAliasDeclaration // type_alias_declaration
	InterfaceDeclaration // interface_declaration
	EnumDeclaration      // enum_declaration
	TypeIdentifier       // type_identifier
)

const numKinds = int(TypeIdentifier) + 1
