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

package tracker

import "fillmore-labs.com/reftrace/jsast"

// KeyResolver folds syntactic keys to compile-time-constant strings.
// Whenever a resolver reports no key, the tracker stops that traversal
// branch instead of guessing.
//
// The default resolver folds literals and substitution-free templates
// only. Callers with stronger constant propagation can substitute their
// own via [WithKeyResolver].
type KeyResolver interface {
	// MemberKey resolves the property name of a member access.
	MemberKey(m *jsast.MemberExpression) (string, bool)

	// PropertyKey resolves the key of an object pattern or object
	// expression property.
	PropertyKey(p *jsast.Property) (string, bool)

	// ConstantString resolves an expression in string position, such
	// as a require argument.
	ConstantString(e jsast.Expr) (string, bool)
}

// literalKeys is the default [KeyResolver].
type literalKeys struct{}

func (literalKeys) MemberKey(m *jsast.MemberExpression) (string, bool) {
	return jsast.PropertyName(m)
}

func (literalKeys) PropertyKey(p *jsast.Property) (string, bool) {
	return jsast.PatternKey(p)
}

func (literalKeys) ConstantString(e jsast.Expr) (string, bool) {
	return jsast.StaticString(e)
}
