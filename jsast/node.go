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

// Span is a half-open byte range [Start, End) in the original source.
// Producers must assign spans so that a parent's span contains the spans
// of all its children and sibling spans do not overlap.
type Span struct {
	Start int
	End   int
}

// Contains reports whether pos lies within the span.
func (s Span) Contains(pos int) bool { return s.Start <= pos && pos < s.End }

// Node is implemented by all syntax tree nodes.
//
// Parent links are not set by node construction; producers call [Link]
// once on the finished tree. The node set is closed: only types in this
// package satisfy Node.
type Node interface {
	// Parent returns the enclosing node, or nil at the root.
	Parent() Node
	// Span returns the node's source range.
	Span() Span
	// SetSpan records the node's source range; producers call it while
	// building the tree.
	SetSpan(Span)

	setParent(Node)
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	isExpr()
}

// Stmt is implemented by all statement and declaration nodes.
type Stmt interface {
	Node
	isStmt()
}

// Pattern is implemented by all binding target nodes. [Identifier] is
// both an Expr and a Pattern.
type Pattern interface {
	Node
	isPattern()
}

// base carries the state shared by every node.
type base struct {
	span   Span
	parent Node
}

func (b *base) Parent() Node     { return b.parent }
func (b *base) Span() Span       { return b.span }
func (b *base) setParent(p Node) { b.parent = p }

// SetSpan records the node's source range. Producers call it while
// building the tree.
func (b *base) SetSpan(s Span) { b.span = s }

// SourceType distinguishes classic scripts from ECMAScript modules.
type SourceType uint8

const (
	// Script is a classic top-level program.
	Script SourceType = iota
	// Module is an ECMAScript module; only module programs carry
	// import and export declarations.
	Module
)

// String returns the ECMAScript goal symbol name.
func (t SourceType) String() string {
	if t == Module {
		return "module"
	}

	return "script"
}

// DeclKind is the keyword of a variable declaration.
type DeclKind uint8

const (
	// Var declarations hoist to the enclosing function or global scope.
	Var DeclKind = iota
	// Let declarations are block scoped.
	Let
	// Const declarations are block scoped and require an initializer.
	Const
)

// String returns the declaration keyword.
func (k DeclKind) String() string {
	switch k {
	case Let:
		return "let"

	case Const:
		return "const"

	default:
		return "var"
	}
}
