// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iterx_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/styledtext/internal/ext/iterx"
)

func TestFilterMap(t *testing.T) {
	t.Parallel()

	seq := slices.Values([]int{1, 2, 3, 4, 5, 6})
	even := iterx.Filter(seq, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(even))
	assert.Equal(t, []int{4, 8, 12}, slices.Collect(iterx.Map(even, func(v int) int { return v * 2 })))

	assert.Equal(t, 3, iterx.Count(even))
	assert.Equal(t, "2, 4, 6", iterx.Join(even, ", "))
	assert.Equal(t, "", iterx.Join(slices.Values([]int(nil)), ", "))

	v, ok := iterx.First(even)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = iterx.First(iterx.Filter(seq, func(v int) bool { return v > 6 }))
	assert.False(t, ok)

	// Stopping early must not call f on the remaining elements.
	var seen []int
	for v := range iterx.FilterMap(seq, func(v int) (int, bool) {
		seen = append(seen, v)
		return v, true
	}) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}
