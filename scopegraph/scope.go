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

package scopegraph

import "fillmore-labs.com/reftrace/jsast"

// ScopeKind classifies the construct a scope belongs to.
type ScopeKind uint8

//go:generate go tool stringer -type ScopeKind -linecomment
const (
	// Global is the outermost scope; undeclared names surface here as
	// variables without definitions.
	Global ScopeKind = iota // global

	// Module is the top-level scope of an ECMAScript module, nested
	// directly under the global scope.
	Module // module

	// Function covers a function's parameters and body.
	Function // function

	// Block covers lexical (let/const) declarations of a block.
	Block // block

	// Class covers a class expression's name binding and body.
	Class // class

	// For covers the lexical declarations of a for statement head.
	For // for
)

// Scope is one lexical scope. Scopes form a tree rooted at the global
// scope; each scope owns the variables declared directly in it.
type Scope struct {
	Kind     ScopeKind
	Block    jsast.Node
	Upper    *Scope
	Children []*Scope

	// Variables in declaration order.
	Variables []*Variable

	names map[string]*Variable
}

// NewScope creates a scope governing block and attaches it below upper.
// The global scope is created with a nil upper link.
func NewScope(kind ScopeKind, block jsast.Node, upper *Scope) *Scope {
	s := &Scope{
		Kind:  kind,
		Block: block,
		Upper: upper,
		names: make(map[string]*Variable),
	}

	if upper != nil {
		upper.Children = append(upper.Children, s)
	}

	return s
}

// Variable returns the variable declared directly in this scope under
// name.
func (s *Scope) Variable(name string) (*Variable, bool) {
	v, ok := s.names[name]

	return v, ok
}

// Declare returns the variable bound to name in this scope, creating it
// on first use. Newly created variables have no definitions and no
// references; the scope analyzer records those separately.
func (s *Scope) Declare(name string) *Variable {
	if v, ok := s.names[name]; ok {
		return v
	}

	v := &Variable{Name: name, Scope: s}
	s.names[name] = v
	s.Variables = append(s.Variables, v)

	return v
}

// Lookup resolves name against this scope and its enclosing scopes,
// innermost first, mirroring lexical shadowing.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	for scope := s; scope != nil; scope = scope.Upper {
		if v, ok := scope.names[name]; ok {
			return v, true
		}
	}

	return nil, false
}
