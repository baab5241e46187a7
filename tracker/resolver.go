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

import (
	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/scopegraph"
)

// findVariable resolves an identifier to its binding: innermost
// enclosing scope first, then outward through the scope chain. An
// identifier outside every indexed scope resolves against the global
// scope.
func (t *Tracker) findVariable(id *jsast.Identifier) (*scopegraph.Variable, bool) {
	if id == nil {
		return nil, false
	}

	scope := t.scopes.Innermost(id.Span().Start)
	if scope == nil {
		scope = t.global
	}

	if scope == nil {
		return nil, false
	}

	return scope.Lookup(id.Name)
}
