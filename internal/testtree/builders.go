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

package testtree

import "fillmore-labs.com/reftrace/jsast"

// Ident builds an identifier. Every call yields a distinct node, one
// per occurrence in the program.
func Ident(name string) *jsast.Identifier {
	return &jsast.Identifier{Name: name}
}

// Str builds a string literal.
func Str(value string) *jsast.StringLiteral {
	return &jsast.StringLiteral{Value: value}
}

// Num builds a number literal.
func Num(value float64) *jsast.NumberLiteral {
	return &jsast.NumberLiteral{Value: value}
}

// Member builds the dot access `object.name`.
func Member(object jsast.Expr, name string) *jsast.MemberExpression {
	return &jsast.MemberExpression{Object: object, Property: Ident(name)}
}

// Index builds the computed access `object[key]`.
func Index(object, key jsast.Expr) *jsast.MemberExpression {
	return &jsast.MemberExpression{Object: object, Property: key, Computed: true}
}

// Call builds `callee(args...)`.
func Call(callee jsast.Expr, args ...jsast.Expr) *jsast.CallExpression {
	return &jsast.CallExpression{Callee: callee, Arguments: args}
}

// New builds `new callee(args...)`.
func New(callee jsast.Expr, args ...jsast.Expr) *jsast.NewExpression {
	return &jsast.NewExpression{Callee: callee, Arguments: args}
}

// Chain wraps an optional-chaining expression.
func Chain(expression jsast.Expr) *jsast.ChainExpression {
	return &jsast.ChainExpression{Expression: expression}
}

// Assign builds the plain assignment `target = value`.
func Assign(target jsast.Node, value jsast.Expr) *jsast.AssignmentExpression {
	return &jsast.AssignmentExpression{Operator: "=", Left: target, Right: value}
}

// ExprStmt wraps an expression in statement position.
func ExprStmt(expression jsast.Expr) *jsast.ExpressionStatement {
	return &jsast.ExpressionStatement{Expression: expression}
}

// Return builds `return argument`.
func Return(argument jsast.Expr) *jsast.ReturnStatement {
	return &jsast.ReturnStatement{Argument: argument}
}

// Block builds a block statement.
func Block(body ...jsast.Stmt) *jsast.BlockStatement {
	return &jsast.BlockStatement{Body: body}
}

// Const builds `const target = init` with a single declarator.
func Const(target jsast.Pattern, init jsast.Expr) *jsast.VariableDeclaration {
	return decl(jsast.Const, target, init)
}

// Let builds `let target = init` with a single declarator. A nil init
// leaves the binding undefined.
func Let(target jsast.Pattern, init jsast.Expr) *jsast.VariableDeclaration {
	return decl(jsast.Let, target, init)
}

// Var builds `var target = init` with a single declarator.
func Var(target jsast.Pattern, init jsast.Expr) *jsast.VariableDeclaration {
	return decl(jsast.Var, target, init)
}

func decl(kind jsast.DeclKind, target jsast.Pattern, init jsast.Expr) *jsast.VariableDeclaration {
	return &jsast.VariableDeclaration{
		Kind:         kind,
		Declarations: []*jsast.VariableDeclarator{{ID: target, Init: init}},
	}
}

// FuncDecl builds a parameterless function declaration.
func FuncDecl(name string, body ...jsast.Stmt) *jsast.FunctionDeclaration {
	return &jsast.FunctionDeclaration{ID: Ident(name), Body: Block(body...)}
}

// Arrow builds a parameterless arrow function with an expression body.
func Arrow(body jsast.Expr) *jsast.ArrowFunctionExpression {
	return &jsast.ArrowFunctionExpression{Body: body}
}

// ObjPat builds an object destructuring pattern.
func ObjPat(properties ...jsast.Node) *jsast.ObjectPattern {
	return &jsast.ObjectPattern{Properties: properties}
}

// Prop builds the property `key: value` of an object pattern or object
// literal.
func Prop(key string, value jsast.Node) *jsast.Property {
	return &jsast.Property{Key: Ident(key), Value: value}
}

// Default builds the defaulted pattern `left = right`.
func Default(left jsast.Pattern, right jsast.Expr) *jsast.AssignmentPattern {
	return &jsast.AssignmentPattern{Left: left, Right: right}
}

// Rest builds the rest element `...argument`.
func Rest(argument jsast.Pattern) *jsast.RestElement {
	return &jsast.RestElement{Argument: argument}
}

// Import builds `import specs from "source"`.
func Import(source string, specs ...jsast.Node) *jsast.ImportDeclaration {
	return &jsast.ImportDeclaration{Specifiers: specs, Source: Str(source)}
}

// ImportDefault builds the default import binding `local`.
func ImportDefault(local string) *jsast.ImportDefaultSpecifier {
	return &jsast.ImportDefaultSpecifier{Local: Ident(local)}
}

// ImportNamed builds the named import binding `name as local`.
func ImportNamed(name, local string) *jsast.ImportSpecifier {
	return &jsast.ImportSpecifier{Imported: Ident(name), Local: Ident(local)}
}

// ImportStar builds the namespace import binding `* as local`.
func ImportStar(local string) *jsast.ImportNamespaceSpecifier {
	return &jsast.ImportNamespaceSpecifier{Local: Ident(local)}
}

// ExportFrom builds `export {specs} from "source"`.
func ExportFrom(source string, specs ...jsast.Node) *jsast.ExportNamedDeclaration {
	return &jsast.ExportNamedDeclaration{Specifiers: specs, Source: Str(source)}
}

// ExportSpec builds the export specifier `name` without renaming.
func ExportSpec(name string) *jsast.ExportSpecifier {
	return &jsast.ExportSpecifier{Local: Ident(name), Exported: Ident(name)}
}

// ExportAll builds `export * from "source"`.
func ExportAll(source string) *jsast.ExportAllDeclaration {
	return &jsast.ExportAllDeclaration{Source: Str(source)}
}
