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

package jsast_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/reftrace/jsast"
)

func TestChildren(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (Node, []Node)
	}{
		{
			name: "member",
			build: func() (Node, []Node) {
				object := &Identifier{Name: "o"}
				property := &Identifier{Name: "p"}
				m := &MemberExpression{Object: object, Property: property}

				return m, []Node{object, property}
			},
		},
		{
			name: "template_interleaved",
			build: func() (Node, []Node) {
				q0 := &TemplateElement{Cooked: "a"}
				q1 := &TemplateElement{Cooked: "b", Tail: true}
				x := &Identifier{Name: "k"}
				tpl := &TemplateLiteral{Quasis: []*TemplateElement{q0, q1}, Expressions: []Expr{x}}

				return tpl, []Node{q0, x, q1}
			},
		},
		{
			name: "call",
			build: func() (Node, []Node) {
				callee := &Identifier{Name: "f"}
				arg0 := &StringLiteral{Value: "a"}
				arg1 := &NumberLiteral{Value: 1}
				call := &CallExpression{Callee: callee, Arguments: []Expr{arg0, arg1}}

				return call, []Node{callee, arg0, arg1}
			},
		},
		{
			name: "array_pattern_holes",
			build: func() (Node, []Node) {
				id := &Identifier{Name: "x"}
				pat := &ArrayPattern{Elements: []Pattern{nil, id}}

				return pat, []Node{id}
			},
		},
		{
			name: "declaration",
			build: func() (Node, []Node) {
				d0 := &VariableDeclarator{ID: &Identifier{Name: "a"}}
				d1 := &VariableDeclarator{ID: &Identifier{Name: "b"}}
				decl := &VariableDeclaration{Kind: Let, Declarations: []*VariableDeclarator{d0, d1}}

				return decl, []Node{d0, d1}
			},
		},
		{
			name: "import",
			build: func() (Node, []Node) {
				spec := &ImportDefaultSpecifier{Local: &Identifier{Name: "d"}}
				source := &StringLiteral{Value: "m"}
				decl := &ImportDeclaration{Specifiers: []Node{spec}, Source: source}

				return decl, []Node{spec, source}
			},
		},
		{
			name: "export_all",
			build: func() (Node, []Node) {
				ns := &Identifier{Name: "ns"}
				source := &StringLiteral{Value: "m"}
				decl := &ExportAllDeclaration{Exported: ns, Source: source}

				return decl, []Node{ns, source}
			},
		},
		{
			name: "if_without_alternate",
			build: func() (Node, []Node) {
				test := &Identifier{Name: "c"}
				then := &BlockStatement{}
				stmt := &IfStatement{Test: test, Consequent: then}

				return stmt, []Node{test, then}
			},
		},
		{
			name: "leaf",
			build: func() (Node, []Node) {
				return &Identifier{Name: "x"}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			node, want := tt.build()

			// when
			got := slices.Collect(Children(node))

			// then
			if !slices.Equal(got, want) {
				t.Errorf("Got %d children %v, expected %d %v", len(got), got, len(want), want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	// given
	object := &Identifier{Name: "o"}
	property := &Identifier{Name: "p"}
	member := &MemberExpression{Object: object, Property: property}
	arg := &StringLiteral{Value: "a"}
	call := &CallExpression{Callee: member, Arguments: []Expr{arg}}
	stmt := &ExpressionStatement{Expression: call}
	prog := &Program{Body: []Stmt{stmt}}

	t.Run("preorder", func(t *testing.T) {
		t.Parallel()

		// when
		var got []Node
		Inspect(prog, func(n Node) bool {
			got = append(got, n)

			return true
		})

		// then
		want := []Node{prog, stmt, call, member, object, property, arg}
		if !slices.Equal(got, want) {
			t.Errorf("Got %v, expected %v", got, want)
		}
	})

	t.Run("skip_subtree", func(t *testing.T) {
		t.Parallel()

		// when
		var got []Node
		Inspect(prog, func(n Node) bool {
			got = append(got, n)

			return n != member
		})

		// then
		want := []Node{prog, stmt, call, member, arg}
		if !slices.Equal(got, want) {
			t.Errorf("Got %v, expected %v", got, want)
		}
	})
}

func TestLink(t *testing.T) {
	t.Parallel()

	// given
	object := &Identifier{Name: "o"}
	property := &Identifier{Name: "p"}
	member := &MemberExpression{Object: object, Property: property}
	stmt := &ExpressionStatement{Expression: member}
	prog := &Program{Body: []Stmt{stmt}}

	// when
	Link(prog)

	// then
	parents := []struct {
		name string
		node Node
		want Node
	}{
		{name: "root", node: prog, want: nil},
		{name: "statement", node: stmt, want: prog},
		{name: "member", node: member, want: stmt},
		{name: "object", node: object, want: member},
		{name: "property", node: property, want: member},
	}

	for _, tt := range parents {
		if got := tt.node.Parent(); got != tt.want {
			t.Errorf("Parent of %s: got %T, expected %T", tt.name, got, tt.want)
		}
	}
}
