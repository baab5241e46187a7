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

// Package testtree assembles linked syntax trees and their scope
// graphs for tests, standing in for the external parser and scope
// analyzer.
//
// Node builders keep test programs readable:
//
//	call := Call(Member(Ident("a"), "y"))
//	_, global := Script(t,
//		Const(Ident("a"), Member(Ident("window"), "x")),
//		ExprStmt(call),
//	)
//
// [Script] and [Module] assign synthetic nested spans, set parent
// links and bind a scope graph with JavaScript's declaration rules:
// var and function declarations hoist to the enclosing function or
// top-level scope, let and const bind in their block, import locals
// bind in the module scope, and names that never resolve surface as
// definition-less variables in the global scope.
//
// Rarer node shapes have no builder; tests construct those struct
// literals directly.
package testtree

import (
	"testing"

	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/scopegraph"
)

// Script assembles a classic script program and binds its scope graph,
// returning the program and the global scope.
func Script(tb testing.TB, body ...jsast.Stmt) (*jsast.Program, *scopegraph.Scope) {
	tb.Helper()

	return program(tb, jsast.Script, body)
}

// Module assembles an ECMAScript module program and binds its scope
// graph, returning the program and the global scope.
func Module(tb testing.TB, body ...jsast.Stmt) (*jsast.Program, *scopegraph.Scope) {
	tb.Helper()

	return program(tb, jsast.Module, body)
}

func program(tb testing.TB, st jsast.SourceType, body []jsast.Stmt) (*jsast.Program, *scopegraph.Scope) {
	tb.Helper()

	prog := &jsast.Program{SourceType: st, Body: body}
	assignSpans(prog, 0)
	jsast.Link(prog)

	return prog, bind(tb, prog)
}

// assignSpans derives every span from a preorder/postorder counter
// pair, so parents strictly contain their children and siblings stay
// disjoint without tracking real source offsets.
func assignSpans(n jsast.Node, pos int) int {
	start := pos
	pos++

	for child := range jsast.Children(n) {
		pos = assignSpans(child, pos)
	}

	n.SetSpan(jsast.Span{Start: start, End: pos})

	return pos + 1
}
