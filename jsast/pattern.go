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

// ObjectPattern is a destructuring target `{...}`. Properties holds
// [*Property] and [*RestElement] values; property values are patterns.
type ObjectPattern struct {
	base
	Properties []Node
}

// ArrayPattern is a destructuring target `[...]`. Elisions are nil
// elements.
type ArrayPattern struct {
	base
	Elements []Pattern
}

// AssignmentPattern is a binding target with a default value,
// `left = right`.
type AssignmentPattern struct {
	base
	Left  Pattern
	Right Expr
}

// RestElement is `...argument` in a destructuring target or parameter
// list.
type RestElement struct {
	base
	Argument Pattern
}

func (*ObjectPattern) isPattern()     {}
func (*ArrayPattern) isPattern()      {}
func (*AssignmentPattern) isPattern() {}
func (*RestElement) isPattern()       {}
