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

package jsast

// Identifier is a name in expression or binding position.
type Identifier struct {
	base
	Name string
}

// PrivateIdentifier is a `#name` class member reference. It only occurs
// as a non-computed member property or class element key.
type PrivateIdentifier struct {
	base
	Name string
}

// StringLiteral is a single- or double-quoted string.
type StringLiteral struct {
	base
	Value string
}

// NumberLiteral is a numeric literal. JavaScript numbers are IEEE 754
// doubles.
type NumberLiteral struct {
	base
	Value float64
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	base
	Value bool
}

// NullLiteral is `null`.
type NullLiteral struct {
	base
}

// RegExpLiteral is a `/pattern/flags` literal.
type RegExpLiteral struct {
	base
	Pattern string
	Flags   string
}

// TemplateLiteral is a backtick template. Quasis has one more element
// than Expressions; a template without substitutions has a single quasi.
type TemplateLiteral struct {
	base
	Quasis      []*TemplateElement
	Expressions []Expr
}

// TemplateElement is one literal chunk of a template.
type TemplateElement struct {
	base
	Raw    string
	Cooked string
	Tail   bool
}

// ThisExpression is `this`.
type ThisExpression struct {
	base
}

// ArrayExpression is `[...]`. Elisions are nil elements.
type ArrayExpression struct {
	base
	Elements []Expr
}

// ObjectExpression is `{...}`. Properties holds [*Property] and
// [*SpreadElement] values.
type ObjectExpression struct {
	base
	Properties []Node
}

// Property is a single `key: value` member of an object expression or
// object pattern. In patterns, Value is a [Pattern]; in expressions it
// is an [Expr]. Shorthand properties repeat the identifier in both
// positions.
type Property struct {
	base
	Key       Expr
	Value     Node
	Computed  bool
	Shorthand bool
}

// MemberExpression is `object.property` or `object[property]`.
type MemberExpression struct {
	base
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	base
	Callee    Expr
	Arguments []Expr
	Optional  bool
}

// NewExpression is `new callee(arguments...)`.
type NewExpression struct {
	base
	Callee    Expr
	Arguments []Expr
}

// AssignmentExpression is `left op right`. Left is an [Expr] for plain
// targets such as member expressions and a [Pattern] for destructuring
// targets.
type AssignmentExpression struct {
	base
	Operator string
	Left     Node
	Right    Expr
}

// ConditionalExpression is `test ? consequent : alternate`.
type ConditionalExpression struct {
	base
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// LogicalExpression is `left && right`, `left || right` or
// `left ?? right`.
type LogicalExpression struct {
	base
	Operator string
	Left     Expr
	Right    Expr
}

// BinaryExpression is `left op right` for arithmetic, comparison and
// relational operators.
type BinaryExpression struct {
	base
	Operator string
	Left     Expr
	Right    Expr
}

// UnaryExpression is `op argument`.
type UnaryExpression struct {
	base
	Operator string
	Argument Expr
}

// UpdateExpression is `++x`, `x++`, `--x` or `x--`.
type UpdateExpression struct {
	base
	Operator string
	Argument Expr
	Prefix   bool
}

// SequenceExpression is `a, b, c`; it evaluates to the last expression.
type SequenceExpression struct {
	base
	Expressions []Expr
}

// ChainExpression wraps an expression containing optional member or
// call accesses.
type ChainExpression struct {
	base
	Expression Expr
}

// AwaitExpression is `await argument`.
type AwaitExpression struct {
	base
	Argument Expr
}

// SpreadElement is `...argument` in call arguments, array expressions
// and object expressions.
type SpreadElement struct {
	base
	Argument Expr
}

// FunctionExpression is an anonymous or named function literal.
type FunctionExpression struct {
	base
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// ArrowFunctionExpression is `(params) => body`. Body is a
// [*BlockStatement] or an [Expr].
type ArrowFunctionExpression struct {
	base
	Params []Pattern
	Body   Node
	Async  bool
}

// ClassExpression is a class literal. Body holds [*MethodDefinition]
// and [*PropertyDefinition] values.
type ClassExpression struct {
	base
	ID         *Identifier
	SuperClass Expr
	Body       []Node
}

// MethodDefinition is one method of a class body.
type MethodDefinition struct {
	base
	Key      Expr
	Value    *FunctionExpression
	Computed bool
	Static   bool
}

// PropertyDefinition is one field of a class body.
type PropertyDefinition struct {
	base
	Key      Expr
	Value    Expr
	Computed bool
	Static   bool
}

func (*Identifier) isExpr()              {}
func (*PrivateIdentifier) isExpr()       {}
func (*StringLiteral) isExpr()           {}
func (*NumberLiteral) isExpr()           {}
func (*BooleanLiteral) isExpr()          {}
func (*NullLiteral) isExpr()             {}
func (*RegExpLiteral) isExpr()           {}
func (*TemplateLiteral) isExpr()         {}
func (*ThisExpression) isExpr()          {}
func (*ArrayExpression) isExpr()         {}
func (*ObjectExpression) isExpr()        {}
func (*MemberExpression) isExpr()        {}
func (*CallExpression) isExpr()          {}
func (*NewExpression) isExpr()           {}
func (*AssignmentExpression) isExpr()    {}
func (*ConditionalExpression) isExpr()   {}
func (*LogicalExpression) isExpr()       {}
func (*BinaryExpression) isExpr()        {}
func (*UnaryExpression) isExpr()         {}
func (*UpdateExpression) isExpr()        {}
func (*SequenceExpression) isExpr()      {}
func (*ChainExpression) isExpr()         {}
func (*AwaitExpression) isExpr()         {}
func (*SpreadElement) isExpr()           {}
func (*FunctionExpression) isExpr()      {}
func (*ArrowFunctionExpression) isExpr() {}
func (*ClassExpression) isExpr()         {}

func (*Identifier) isPattern() {}
