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

import (
	"math"
	"strconv"
	"strings"
)

// PropertyName resolves the property name of a member expression.
// Dot notation resolves to the identifier; bracket notation resolves
// only when the key is a compile-time constant ([StaticString]).
// Private members do not resolve.
func PropertyName(m *MemberExpression) (string, bool) {
	if m.Computed {
		return StaticString(m.Property)
	}

	if id, ok := m.Property.(*Identifier); ok {
		return id.Name, true
	}

	return "", false
}

// PatternKey resolves the key of an object expression or object pattern
// property. Non-computed keys may be identifiers or literals; computed
// keys resolve only when constant.
func PatternKey(p *Property) (string, bool) {
	if p.Computed {
		return StaticString(p.Key)
	}

	switch key := p.Key.(type) {
	case *Identifier:
		return key.Name, true

	case *StringLiteral:
		return key.Value, true

	case *NumberLiteral:
		return NumberString(key.Value), true

	default:
		return "", false
	}
}

// StaticString resolves an expression to its compile-time string value:
// string, number, boolean and null literals in their canonical
// JavaScript string forms, and template literals without substitutions.
// Concatenation and other constant expressions are not folded.
func StaticString(e Expr) (string, bool) {
	switch e := e.(type) {
	case *StringLiteral:
		return e.Value, true

	case *NumberLiteral:
		return NumberString(e.Value), true

	case *BooleanLiteral:
		return strconv.FormatBool(e.Value), true

	case *NullLiteral:
		return "null", true

	case *TemplateLiteral:
		if len(e.Expressions) == 0 && len(e.Quasis) == 1 {
			return e.Quasis[0].Cooked, true
		}

		return "", false

	default:
		return "", false
	}
}

// ModuleExportName resolves an import or export specifier name, which
// the grammar allows to be an identifier or a string literal.
func ModuleExportName(e Expr) (string, bool) {
	switch e := e.(type) {
	case *Identifier:
		return e.Name, true

	case *StringLiteral:
		return e.Value, true

	default:
		return "", false
	}
}

// NumberString renders a number the way JavaScript's String() does:
// integral values without a decimal point, decimals in shortest form,
// exponent notation outside [1e-6, 1e21) and the Infinity/NaN
// spellings.
func NumberString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"

	case math.IsInf(v, 1):
		return "Infinity"

	case math.IsInf(v, -1):
		return "-Infinity"

	case v == 0:
		// Negative zero prints as "0".
		return "0"

	case math.Abs(v) >= 1e21 || math.Abs(v) < 1e-6:
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))

	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// trimExponent removes the leading zeros Go pads exponents with;
// JavaScript prints 1e-7, not 1e-07.
func trimExponent(s string) string {
	e := strings.IndexByte(s, 'e')
	if e < 0 {
		return s
	}

	mantissa, exponent := s[:e+1], s[e+1:]

	var sign string
	if len(exponent) > 0 && (exponent[0] == '+' || exponent[0] == '-') {
		sign, exponent = string(exponent[0]), exponent[1:]
	}

	exponent = strings.TrimLeft(exponent, "0")
	if exponent == "" {
		exponent = "0"
	}

	return mantissa + sign + exponent
}
