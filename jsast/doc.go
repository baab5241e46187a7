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

// Package jsast defines the JavaScript syntax tree consumed by the
// reference tracker.
//
// # Overview
//
// The node shapes follow the ESTree conventions: expressions,
// statements, declarations, binding patterns and module specifiers,
// modeled as a closed set of struct types behind the [Node], [Expr],
// [Stmt] and [Pattern] interfaces. The package never parses source
// text; a parser front end populates these nodes and hands the tree to
// an analysis.
//
// # Producer contract
//
// Producers assign every node a [Span] (half-open byte offsets into the
// original source, with parent spans containing child spans) and call
// [Link] once on the finished tree so that [Node.Parent] is stable
// everywhere. Trees are immutable after that point.
//
// # Constant keys
//
// [PropertyName], [PatternKey] and [StaticString] fold member and
// property keys that are resolvable at compile time. Bracket notation
// and computed keys resolve only for literal constants and
// substitution-free templates; anything else reports no key.
package jsast
