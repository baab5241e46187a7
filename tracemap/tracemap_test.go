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

package tracemap_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/reftrace/tracemap"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	// given
	m := Map{"window": {}, "console": {}, "Array": {}}

	// when
	got := Keys(m)

	// then
	want := []string{"Array", "console", "window"}
	if !slices.Equal(got, want) {
		t.Errorf("Got %v, expected %v", got, want)
	}
}

func TestKeysEmpty(t *testing.T) {
	t.Parallel()

	if got := Keys(nil); len(got) != 0 {
		t.Errorf("Got %v, expected no keys", got)
	}
}
