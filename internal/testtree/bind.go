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

import (
	"testing"

	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/scopegraph"
)

// binder builds a scope graph in two passes: the first creates scopes
// and declares every binding, so hoisting and forward references come
// out right; the second resolves identifier references against the
// finished scopes.
type binder struct {
	tb     testing.TB
	global *scopegraph.Scope
	scopes map[jsast.Node]*scopegraph.Scope
}

func bind(tb testing.TB, prog *jsast.Program) *scopegraph.Scope {
	tb.Helper()

	b := &binder{
		tb:     tb,
		global: scopegraph.NewScope(scopegraph.Global, prog, nil),
		scopes: make(map[jsast.Node]*scopegraph.Scope),
	}

	top := b.global
	if prog.SourceType == jsast.Module {
		top = scopegraph.NewScope(scopegraph.Module, prog, b.global)
	}

	for _, stmt := range prog.Body {
		b.declare(stmt, top)
	}

	for _, stmt := range prog.Body {
		b.resolve(stmt, top)
	}

	return b.global
}

// hoistScope is the scope var and function-scoped declarations land
// in: the nearest enclosing function, module or global scope.
func hoistScope(s *scopegraph.Scope) *scopegraph.Scope {
	for ; s.Upper != nil; s = s.Upper {
		if s.Kind == scopegraph.Function || s.Kind == scopegraph.Module {
			return s
		}
	}

	return s
}

func (b *binder) declare(n jsast.Node, scope *scopegraph.Scope) {
	switch n := n.(type) {
	case nil:

	case *jsast.VariableDeclaration:
		target := scope
		if n.Kind == jsast.Var {
			target = hoistScope(scope)
		}

		for _, d := range n.Declarations {
			b.declarePattern(d.ID, scopegraph.DefVariable, d, target)
			b.declare(d.Init, scope)
		}

	case *jsast.FunctionDeclaration:
		if n.ID != nil {
			scope.Declare(n.ID.Name).AddDefinition(scopegraph.DefFunction, n.ID, n)
		}

		b.declareFunction(n, n.Params, n.Body, scope)

	case *jsast.FunctionExpression:
		fn := b.declareFunction(n, n.Params, n.Body, scope)
		if n.ID != nil {
			// A function expression's own name binds inside it only.
			fn.Declare(n.ID.Name).AddDefinition(scopegraph.DefFunction, n.ID, n)
		}

	case *jsast.ArrowFunctionExpression:
		b.declareFunction(n, n.Params, n.Body, scope)

	case *jsast.BlockStatement:
		blk := scopegraph.NewScope(scopegraph.Block, n, scope)
		b.scopes[n] = blk

		for _, s := range n.Body {
			b.declare(s, blk)
		}

	case *jsast.ForStatement:
		target := scope
		if init, ok := n.Init.(*jsast.VariableDeclaration); ok && init.Kind != jsast.Var {
			target = scopegraph.NewScope(scopegraph.For, n, scope)
			b.scopes[n] = target
		}

		b.declare(n.Init, target)
		b.declare(n.Test, target)
		b.declare(n.Update, target)
		b.declare(n.Body, target)

	case *jsast.ClassDeclaration:
		if n.ID != nil {
			scope.Declare(n.ID.Name).AddDefinition(scopegraph.DefClass, n.ID, n)
		}

		b.declare(n.SuperClass, scope)
		for _, m := range n.Body {
			b.declare(m, scope)
		}

	case *jsast.ImportDeclaration:
		for _, spec := range n.Specifiers {
			if local := importLocal(spec); local != nil {
				scope.Declare(local.Name).AddDefinition(scopegraph.DefImport, local, spec)
			}
		}

	case *jsast.ExportNamedDeclaration:
		b.declare(n.Declaration, scope)

	case *jsast.ExportDefaultDeclaration:
		b.declare(n.Declaration, scope)

	default:
		for child := range jsast.Children(n) {
			b.declare(child, scope)
		}
	}
}

// declareFunction opens a function scope, declares the parameters in
// it and declares the body. The body block shares the function scope.
func (b *binder) declareFunction(node jsast.Node, params []jsast.Pattern, body jsast.Node, upper *scopegraph.Scope) *scopegraph.Scope {
	fn := scopegraph.NewScope(scopegraph.Function, node, upper)
	b.scopes[node] = fn

	for _, p := range params {
		b.declarePattern(p, scopegraph.DefParameter, node, fn)
	}

	if block, ok := body.(*jsast.BlockStatement); ok {
		for _, s := range block.Body {
			b.declare(s, fn)
		}
	} else {
		b.declare(body, fn)
	}

	return fn
}

func (b *binder) declarePattern(p jsast.Pattern, kind scopegraph.DefKind, node jsast.Node, scope *scopegraph.Scope) {
	switch p := p.(type) {
	case nil:

	case *jsast.Identifier:
		scope.Declare(p.Name).AddDefinition(kind, p, node)

	case *jsast.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *jsast.Property:
				value, ok := prop.Value.(jsast.Pattern)
				if !ok {
					b.tb.Fatalf("property value %T cannot bind", prop.Value)
				}

				b.declarePattern(value, kind, node, scope)

			case *jsast.RestElement:
				b.declarePattern(prop.Argument, kind, node, scope)
			}
		}

	case *jsast.ArrayPattern:
		for _, el := range p.Elements {
			b.declarePattern(el, kind, node, scope)
		}

	case *jsast.AssignmentPattern:
		b.declarePattern(p.Left, kind, node, scope)
		b.declare(p.Right, scope)

	case *jsast.RestElement:
		b.declarePattern(p.Argument, kind, node, scope)

	default:
		b.tb.Fatalf("cannot declare pattern %T", p)
	}
}

func (b *binder) resolve(n jsast.Node, scope *scopegraph.Scope) {
	switch n := n.(type) {
	case nil:

	case *jsast.Identifier:
		b.reference(n, scope, scopegraph.RefRead)

	case *jsast.MemberExpression:
		b.resolve(n.Object, scope)
		if n.Computed {
			b.resolve(n.Property, scope)
		}

	case *jsast.Property:
		if n.Computed {
			b.resolve(n.Key, scope)
		}

		b.resolve(n.Value, scope)

	case *jsast.AssignmentExpression:
		flags := scopegraph.RefWrite
		if n.Operator != "=" {
			flags = scopegraph.RefReadWrite
		}

		b.writeTarget(n.Left, flags, scope)
		b.resolve(n.Right, scope)

	case *jsast.UpdateExpression:
		if id, ok := n.Argument.(*jsast.Identifier); ok {
			b.reference(id, scope, scopegraph.RefReadWrite)
		} else {
			b.resolve(n.Argument, scope)
		}

	case *jsast.VariableDeclaration:
		for _, d := range n.Declarations {
			b.declaratorRefs(d.ID, d.Init != nil, scope)
			b.resolve(d.Init, scope)
		}

	case *jsast.FunctionDeclaration:
		b.resolveFunction(n, n.Params, n.Body)

	case *jsast.FunctionExpression:
		b.resolveFunction(n, n.Params, n.Body)

	case *jsast.ArrowFunctionExpression:
		b.resolveFunction(n, n.Params, n.Body)

	case *jsast.BlockStatement:
		blk := b.blockScope(n, scope)
		for _, s := range n.Body {
			b.resolve(s, blk)
		}

	case *jsast.ForStatement:
		sc := scope
		if forScope, ok := b.scopes[n]; ok {
			sc = forScope
		}

		b.resolve(n.Init, sc)
		b.resolve(n.Test, sc)
		b.resolve(n.Update, sc)
		b.resolve(n.Body, sc)

	case *jsast.ClassDeclaration:
		b.resolve(n.SuperClass, scope)
		for _, m := range n.Body {
			b.resolve(m, scope)
		}

	case *jsast.ClassExpression:
		b.resolve(n.SuperClass, scope)
		for _, m := range n.Body {
			b.resolve(m, scope)
		}

	case *jsast.MethodDefinition:
		if n.Computed {
			b.resolve(n.Key, scope)
		}

		b.resolve(n.Value, scope)

	case *jsast.PropertyDefinition:
		if n.Computed {
			b.resolve(n.Key, scope)
		}

		b.resolve(n.Value, scope)

	case *jsast.ImportDeclaration:
		// Import names are definitions, not references.

	case *jsast.ExportNamedDeclaration:
		b.resolve(n.Declaration, scope)

	case *jsast.ExportAllDeclaration:

	case *jsast.ExportDefaultDeclaration:
		b.resolve(n.Declaration, scope)

	default:
		for child := range jsast.Children(n) {
			b.resolve(child, scope)
		}
	}
}

func (b *binder) resolveFunction(node jsast.Node, params []jsast.Pattern, body jsast.Node) {
	fn, ok := b.scopes[node]
	if !ok {
		b.tb.Fatalf("function %T has no scope", node)
	}

	for _, p := range params {
		b.paramDefaults(p, fn)
	}

	if block, ok := body.(*jsast.BlockStatement); ok {
		for _, s := range block.Body {
			b.resolve(s, fn)
		}
	} else {
		b.resolve(body, fn)
	}
}

// paramDefaults resolves the default-value expressions buried in a
// parameter pattern; the bound names themselves are definitions.
func (b *binder) paramDefaults(p jsast.Pattern, fn *scopegraph.Scope) {
	switch p := p.(type) {
	case *jsast.AssignmentPattern:
		b.paramDefaults(p.Left, fn)
		b.resolve(p.Right, fn)

	case *jsast.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *jsast.Property:
				if prop.Computed {
					b.resolve(prop.Key, fn)
				}

				if value, ok := prop.Value.(jsast.Pattern); ok {
					b.paramDefaults(value, fn)
				}

			case *jsast.RestElement:
				b.paramDefaults(prop.Argument, fn)
			}
		}

	case *jsast.ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				b.paramDefaults(el, fn)
			}
		}

	case *jsast.RestElement:
		b.paramDefaults(p.Argument, fn)
	}
}

// writeTarget records assignment references: plain targets write,
// compound operators read and write, and member targets read their
// object like any expression.
func (b *binder) writeTarget(n jsast.Node, flags scopegraph.RefFlags, scope *scopegraph.Scope) {
	switch n := n.(type) {
	case nil:

	case *jsast.Identifier:
		b.reference(n, scope, flags)

	case *jsast.MemberExpression:
		b.resolve(n, scope)

	case *jsast.ObjectPattern:
		for _, prop := range n.Properties {
			switch prop := prop.(type) {
			case *jsast.Property:
				if prop.Computed {
					b.resolve(prop.Key, scope)
				}

				b.writeTarget(prop.Value, flags, scope)

			case *jsast.RestElement:
				b.writeTarget(prop.Argument, flags, scope)
			}
		}

	case *jsast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				b.writeTarget(el, flags, scope)
			}
		}

	case *jsast.AssignmentPattern:
		b.writeTarget(n.Left, flags, scope)
		b.resolve(n.Right, scope)

	case *jsast.RestElement:
		b.writeTarget(n.Argument, flags, scope)

	default:
		b.resolve(n, scope)
	}
}

// declaratorRefs records the write references a declarator's
// initializer puts on its bound names. Bare declarations leave no
// reference.
func (b *binder) declaratorRefs(p jsast.Pattern, initialized bool, scope *scopegraph.Scope) {
	switch p := p.(type) {
	case nil:

	case *jsast.Identifier:
		if initialized {
			b.reference(p, scope, scopegraph.RefWrite)
		}

	case *jsast.ObjectPattern:
		for _, prop := range p.Properties {
			switch prop := prop.(type) {
			case *jsast.Property:
				if prop.Computed {
					b.resolve(prop.Key, scope)
				}

				if value, ok := prop.Value.(jsast.Pattern); ok {
					b.declaratorRefs(value, initialized, scope)
				}

			case *jsast.RestElement:
				b.declaratorRefs(prop.Argument, initialized, scope)
			}
		}

	case *jsast.ArrayPattern:
		for _, el := range p.Elements {
			b.declaratorRefs(el, initialized, scope)
		}

	case *jsast.AssignmentPattern:
		b.declaratorRefs(p.Left, initialized, scope)
		b.resolve(p.Right, scope)

	case *jsast.RestElement:
		b.declaratorRefs(p.Argument, initialized, scope)
	}
}

// reference resolves an identifier against the scope chain. Names that
// never resolve surface as definition-less variables in the global
// scope, matching scope analyzer behavior for undeclared globals.
func (b *binder) reference(id *jsast.Identifier, scope *scopegraph.Scope, flags scopegraph.RefFlags) {
	v, ok := scope.Lookup(id.Name)
	if !ok {
		v = b.global.Declare(id.Name)
	}

	v.AddReference(id, flags)
}

func (b *binder) blockScope(n *jsast.BlockStatement, scope *scopegraph.Scope) *scopegraph.Scope {
	if blk, ok := b.scopes[n]; ok {
		return blk
	}

	return scope
}

func importLocal(spec jsast.Node) *jsast.Identifier {
	switch spec := spec.(type) {
	case *jsast.ImportSpecifier:
		return spec.Local

	case *jsast.ImportDefaultSpecifier:
		return spec.Local

	case *jsast.ImportNamespaceSpecifier:
		return spec.Local

	default:
		return nil
	}
}
