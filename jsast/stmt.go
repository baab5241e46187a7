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

// Program is the root of a syntax tree. Its parent is always nil.
type Program struct {
	base
	SourceType SourceType
	Body       []Stmt
}

// ExpressionStatement is an expression in statement position.
type ExpressionStatement struct {
	base
	Expression Expr
}

// BlockStatement is `{ statements... }`.
type BlockStatement struct {
	base
	Body []Stmt
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	base
}

// VariableDeclaration is `var/let/const declarators...`.
type VariableDeclaration struct {
	base
	Kind         DeclKind
	Declarations []*VariableDeclarator
}

// VariableDeclarator is one `id = init` binding of a variable
// declaration. Init is nil for bare declarations.
type VariableDeclarator struct {
	base
	ID   Pattern
	Init Expr
}

// FunctionDeclaration declares a named function.
type FunctionDeclaration struct {
	base
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// ClassDeclaration declares a named class. Body holds
// [*MethodDefinition] and [*PropertyDefinition] values.
type ClassDeclaration struct {
	base
	ID         *Identifier
	SuperClass Expr
	Body       []Node
}

// ReturnStatement is `return argument` with an optional argument.
type ReturnStatement struct {
	base
	Argument Expr
}

// IfStatement is `if (test) consequent else alternate`.
type IfStatement struct {
	base
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

// ForStatement is a classic three-clause loop. Init is a
// [*VariableDeclaration] or an [Expr]; all clauses may be nil.
type ForStatement struct {
	base
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	base
	Test Expr
	Body Stmt
}

// ThrowStatement is `throw argument`.
type ThrowStatement struct {
	base
	Argument Expr
}

// ImportDeclaration is `import ... from "source"`. Specifiers holds
// [*ImportSpecifier], [*ImportDefaultSpecifier] and
// [*ImportNamespaceSpecifier] values.
type ImportDeclaration struct {
	base
	Specifiers []Node
	Source     *StringLiteral
}

// ImportSpecifier is a named import `{imported as local}`. Imported is
// an [*Identifier] or, for arbitrary module export names, a
// [*StringLiteral].
type ImportSpecifier struct {
	base
	Imported Expr
	Local    *Identifier
}

// ImportDefaultSpecifier is a default import `local`.
type ImportDefaultSpecifier struct {
	base
	Local *Identifier
}

// ImportNamespaceSpecifier is a namespace import `* as local`.
type ImportNamespaceSpecifier struct {
	base
	Local *Identifier
}

// ExportNamedDeclaration is `export {specifiers...}`, optionally with a
// `from "source"` clause, or `export declaration`. Specifiers holds
// [*ExportSpecifier] values.
type ExportNamedDeclaration struct {
	base
	Declaration Stmt
	Specifiers  []Node
	Source      *StringLiteral
}

// ExportSpecifier is `local as exported`. Both names may be
// [*Identifier] or [*StringLiteral] values; with a source clause, Local
// names a binding of the source module.
type ExportSpecifier struct {
	base
	Local    Expr
	Exported Expr
}

// ExportDefaultDeclaration is `export default declaration`.
type ExportDefaultDeclaration struct {
	base
	Declaration Node
}

// ExportAllDeclaration is `export * from "source"`, optionally with an
// `as exported` alias.
type ExportAllDeclaration struct {
	base
	Source   *StringLiteral
	Exported Expr
}

func (*ExpressionStatement) isStmt()      {}
func (*BlockStatement) isStmt()           {}
func (*EmptyStatement) isStmt()           {}
func (*VariableDeclaration) isStmt()      {}
func (*FunctionDeclaration) isStmt()      {}
func (*ClassDeclaration) isStmt()         {}
func (*ReturnStatement) isStmt()          {}
func (*IfStatement) isStmt()              {}
func (*ForStatement) isStmt()             {}
func (*WhileStatement) isStmt()           {}
func (*ThrowStatement) isStmt()           {}
func (*ImportDeclaration) isStmt()        {}
func (*ExportNamedDeclaration) isStmt()   {}
func (*ExportDefaultDeclaration) isStmt() {}
func (*ExportAllDeclaration) isStmt()     {}
