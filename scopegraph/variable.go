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

// DefKind classifies the declaration that introduced a variable.
type DefKind uint8

//go:generate go tool stringer -type DefKind -linecomment
const (
	// DefVariable is a var, let or const declarator binding.
	DefVariable DefKind = iota // variable

	// DefFunction is a function declaration name.
	DefFunction // function

	// DefClass is a class declaration name.
	DefClass // class

	// DefParameter is a function parameter binding.
	DefParameter // parameter

	// DefImport is an import specifier's local binding.
	DefImport // import
)

// RefFlags describes how a reference uses its variable.
type RefFlags uint8

const (
	// RefRead marks a reference that reads the variable's value.
	RefRead RefFlags = 1 << iota
	// RefWrite marks a reference that assigns to the variable.
	RefWrite

	// RefReadWrite marks compound assignments and update expressions,
	// which read and write in one step.
	RefReadWrite = RefRead | RefWrite
)

// String returns "read", "write" or "read-write".
func (f RefFlags) String() string {
	switch f {
	case RefRead:
		return "read"

	case RefWrite:
		return "write"

	case RefReadWrite:
		return "read-write"

	default:
		return "none"
	}
}

// Variable is one resolved binding. A variable with no definitions is
// an implicit global: the scope analyzer synthesizes it in the global
// scope when a name never resolves to a declaration.
type Variable struct {
	Name  string
	Scope *Scope

	// References in source order.
	References []*Reference
	// Defs in source order; empty means implicit/undeclared.
	Defs []*Definition
}

// Declared reports whether the variable has at least one declaring
// definition.
func (v *Variable) Declared() bool { return len(v.Defs) > 0 }

// AddReference appends a use of the variable at the given identifier.
func (v *Variable) AddReference(id *jsast.Identifier, flags RefFlags) *Reference {
	r := &Reference{Identifier: id, Flags: flags, Variable: v}
	v.References = append(v.References, r)

	return r
}

// AddDefinition appends a declaring definition of the variable.
func (v *Variable) AddDefinition(kind DefKind, name *jsast.Identifier, node jsast.Node) *Definition {
	d := &Definition{Kind: kind, Name: name, Node: node}
	v.Defs = append(v.Defs, d)

	return d
}

// Reference is one occurrence of a variable in the program.
type Reference struct {
	// Identifier is the node the reference is attached to.
	Identifier *jsast.Identifier
	Flags      RefFlags
	// Variable is the binding the reference resolved to.
	Variable *Variable
}

// IsRead reports whether the reference reads the variable.
func (r *Reference) IsRead() bool { return r.Flags&RefRead != 0 }

// IsWrite reports whether the reference assigns to the variable.
func (r *Reference) IsWrite() bool { return r.Flags&RefWrite != 0 }

// Definition records where and how a variable was declared.
type Definition struct {
	Kind DefKind
	// Name is the declared identifier.
	Name *jsast.Identifier
	// Node is the declaring construct: the variable declarator,
	// function or class declaration, parameter pattern or import
	// specifier.
	Node jsast.Node
}
