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
	"math"
	"testing"

	. "fillmore-labs.com/reftrace/jsast"
)

func TestPropertyName(t *testing.T) {
	t.Parallel()

	obj := &Identifier{Name: "o"}

	tests := []struct {
		name   string
		member *MemberExpression
		want   string
		ok     bool
	}{
		{
			name:   "dot",
			member: &MemberExpression{Object: obj, Property: &Identifier{Name: "log"}},
			want:   "log",
			ok:     true,
		},
		{
			name:   "private",
			member: &MemberExpression{Object: obj, Property: &PrivateIdentifier{Name: "state"}},
			ok:     false,
		},
		{
			name:   "bracket_string",
			member: &MemberExpression{Object: obj, Property: &StringLiteral{Value: "log"}, Computed: true},
			want:   "log",
			ok:     true,
		},
		{
			name:   "bracket_number",
			member: &MemberExpression{Object: obj, Property: &NumberLiteral{Value: 0}, Computed: true},
			want:   "0",
			ok:     true,
		},
		{
			name:   "bracket_boolean",
			member: &MemberExpression{Object: obj, Property: &BooleanLiteral{Value: true}, Computed: true},
			want:   "true",
			ok:     true,
		},
		{
			name:   "bracket_null",
			member: &MemberExpression{Object: obj, Property: &NullLiteral{}, Computed: true},
			want:   "null",
			ok:     true,
		},
		{
			name: "bracket_template",
			member: &MemberExpression{
				Object:   obj,
				Property: &TemplateLiteral{Quasis: []*TemplateElement{{Cooked: "key", Tail: true}}},
				Computed: true,
			},
			want: "key",
			ok:   true,
		},
		{
			name: "bracket_template_substitution",
			member: &MemberExpression{
				Object: obj,
				Property: &TemplateLiteral{
					Quasis:      []*TemplateElement{{Cooked: "a"}, {Cooked: "b", Tail: true}},
					Expressions: []Expr{&Identifier{Name: "k"}},
				},
				Computed: true,
			},
			ok: false,
		},
		{
			name:   "bracket_dynamic",
			member: &MemberExpression{Object: obj, Property: &Identifier{Name: "k"}, Computed: true},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := PropertyName(tt.member)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Got (%q, %t), expected (%q, %t)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPatternKey(t *testing.T) {
	t.Parallel()

	value := &Identifier{Name: "v"}

	tests := []struct {
		name     string
		property *Property
		want     string
		ok       bool
	}{
		{
			name:     "identifier",
			property: &Property{Key: &Identifier{Name: "x"}, Value: value},
			want:     "x",
			ok:       true,
		},
		{
			name:     "string",
			property: &Property{Key: &StringLiteral{Value: "a-b"}, Value: value},
			want:     "a-b",
			ok:       true,
		},
		{
			name:     "number",
			property: &Property{Key: &NumberLiteral{Value: 1.5}, Value: value},
			want:     "1.5",
			ok:       true,
		},
		{
			name:     "computed_constant",
			property: &Property{Key: &StringLiteral{Value: "x"}, Value: value, Computed: true},
			want:     "x",
			ok:       true,
		},
		{
			name:     "computed_dynamic",
			property: &Property{Key: &Identifier{Name: "k"}, Value: value, Computed: true},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := PatternKey(tt.property)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Got (%q, %t), expected (%q, %t)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModuleExportName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr Expr
		want string
		ok   bool
	}{
		{name: "identifier", expr: &Identifier{Name: "foo"}, want: "foo", ok: true},
		{name: "string", expr: &StringLiteral{Value: "a-b"}, want: "a-b", ok: true},
		{name: "number", expr: &NumberLiteral{Value: 1}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ModuleExportName(tt.expr)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Got (%q, %t), expected (%q, %t)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNumberString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "integer", value: 42, want: "42"},
		{name: "negative", value: -7, want: "-7"},
		{name: "decimal", value: 1.5, want: "1.5"},
		{name: "zero", value: 0, want: "0"},
		{name: "negative_zero", value: math.Copysign(0, -1), want: "0"},
		{name: "shortest_roundtrip", value: 0.1 + 0.2, want: "0.30000000000000004"},
		{name: "nan", value: math.NaN(), want: "NaN"},
		{name: "positive_infinity", value: math.Inf(1), want: "Infinity"},
		{name: "negative_infinity", value: math.Inf(-1), want: "-Infinity"},
		{name: "below_exponent_threshold", value: 1e20, want: "100000000000000000000"},
		{name: "exponent_threshold", value: 1e21, want: "1e+21"},
		{name: "large_mantissa", value: 1.5e22, want: "1.5e+22"},
		{name: "small_boundary", value: 1e-6, want: "0.000001"},
		{name: "small_exponent", value: 1e-7, want: "1e-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NumberString(tt.value); got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
