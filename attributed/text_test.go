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

package attributed_test

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/styledtext/attributed"
	"github.com/bufbuild/styledtext/internal/ext/iterx"
	"github.com/bufbuild/styledtext/text"
)

// Attr is an attribute for tests.
type Attr struct {
	Name   string
	Remove bool // Whether OnEdit returns Remove.
}

func (a Attr) OnEdit() attributed.SpanEditAction {
	if a.Remove {
		return attributed.Remove
	}
	return attributed.Keep
}

func (a Attr) String() string {
	return a.Name
}

// names collects the names of the attributes yielded by seq.
func names(seq iter.Seq[Attr]) []string {
	return slices.Collect(iterx.Map(seq, Attr.String))
}

func TestApply(t *testing.T) {
	t.Parallel()

	at := attributed.New[Attr](text.String("Hello!"))

	assert.NoError(t, at.Apply(0, 3, Attr{Name: "a"}))
	assert.NoError(t, at.Apply(0, 6, Attr{Name: "b"}))
	assert.NoError(t, at.Apply(6, 6, Attr{Name: "c"}))
	assert.NoError(t, at.Apply(4, 2, Attr{Name: "inverted"}))

	for _, r := range [][2]int{{0, 7}, {7, 8}, {7, 6}, {-1, 3}, {0, -1}} {
		err := at.Apply(r[0], r[1], Attr{Name: "bad"})
		assert.ErrorIs(t, err, attributed.ErrInvalidBounds, "%v", r)

		var boundsErr *attributed.BoundsError
		require.ErrorAs(t, err, &boundsErr)
		assert.Equal(t, attributed.Range(r[0], r[1]), boundsErr.Bounds)
		assert.Equal(t, 6, boundsErr.Len)
	}

	assert.Equal(t, 4, iterx.Count2(at.Spans()))
	assert.Equal(t,
		"attributed: invalid bounds: [0, 7) for length 6",
		at.Apply(0, 7, Attr{}).Error(),
	)
}

func TestApplyBounds(t *testing.T) {
	t.Parallel()

	at := attributed.New[Attr](text.String("Hello!"))

	ok := []attributed.Bounds{
		attributed.Range(0, 6),
		attributed.RangeInclusive(0, 5),
		attributed.Full(),
		attributed.From(3),
		attributed.ToInclusive(5),
		// Only the end is checked against the length.
		attributed.From(9),
		{Start: attributed.Inclusive(8), End: attributed.Exclusive(6)},
	}
	for _, b := range ok {
		assert.NoError(t, at.ApplyBounds(b, Attr{Name: b.String()}), "%v", b)
	}

	bad := []attributed.Bounds{
		attributed.Range(0, 7),
		attributed.RangeInclusive(0, 6),
		attributed.To(7),
		attributed.Range(-1, 3),
		{Start: attributed.Exclusive(-2), End: attributed.Exclusive(3)},
	}
	for _, b := range bad {
		err := at.ApplyBounds(b, Attr{Name: "bad"})
		assert.ErrorIs(t, err, attributed.ErrInvalidBounds, "%v", b)
	}

	var got []attributed.Bounds
	for b := range at.Spans() {
		got = append(got, b)
	}
	assert.Equal(t, ok, got)
}

func TestQueries(t *testing.T) {
	t.Parallel()

	at := attributed.New[Attr](text.String("Hello World"))
	require.NoError(t, at.Apply(0, 5, Attr{Name: "a"}))
	require.NoError(t, at.Apply(3, 8, Attr{Name: "b"}))
	require.NoError(t, at.Apply(6, 11, Attr{Name: "c"}))
	require.NoError(t, at.ApplyBounds(attributed.Full(), Attr{Name: "d"}))
	require.NoError(t, at.Apply(5, 5, Attr{Name: "empty"}))
	require.NoError(t, at.Apply(8, 2, Attr{Name: "inverted"}))
	require.NoError(t, at.ApplyBounds(attributed.RangeInclusive(9, 9), Attr{Name: "e"}))

	tests := []struct {
		index int
		want  []string
	}{
		{index: -1},
		{index: 0, want: []string{"a", "d"}},
		{index: 4, want: []string{"a", "b", "d"}},
		{index: 5, want: []string{"b", "d"}},
		{index: 6, want: []string{"b", "c", "d"}},
		{index: 9, want: []string{"c", "d", "e"}},
		{index: 10, want: []string{"c", "d"}},
		{index: 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names(at.AttributesAt(tt.index)), "at %d", tt.index)
	}

	ranges := []struct {
		start, end int
		want       []string
	}{
		{start: 5, end: 6, want: []string{"b", "d"}},
		{start: 0, end: 11, want: []string{"a", "b", "c", "d", "e"}},
		{start: 4, end: 7, want: []string{"a", "b", "c", "d"}},
		{start: 8, end: 9, want: []string{"c", "d"}},
		{start: 9, end: 100, want: []string{"c", "d", "e"}},
		// Zero-length and inverted queries never match.
		{start: 4, end: 4},
		{start: 0, end: 0},
		{start: 11, end: 11},
		{start: 7, end: 3},
	}
	for _, tt := range ranges {
		assert.Equal(t, tt.want, names(at.AttributesForRange(tt.start, tt.end)), "range [%d, %d)", tt.start, tt.end)
	}

	assert.Equal(t, []string{"b", "c", "d", "e"}, names(at.AttributesForBounds(attributed.From(7))))
	assert.Equal(t, []string{"a", "d"}, names(at.AttributesForBounds(attributed.ToInclusive(2))))

	// Iterators are lazy and may be stopped early.
	first, ok := iterx.First(at.AttributesForRange(0, 11))
	assert.True(t, ok)
	assert.Equal(t, "a", first.Name)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	at := attributed.New[Attr](text.String("Hello World"))
	require.NoError(t, at.Apply(0, 5, Attr{Name: "bold"}))
	require.NoError(t, at.ApplyBounds(attributed.From(6), Attr{Name: "italic"}))

	assert.Equal(t, "{[0, 5): bold, [6, ..): italic}", fmt.Sprintf("%v", at))
	assert.Equal(t, 11, at.Len())
	assert.Equal(t, text.String("Hello World"), at.Text())
}

func TestInsertionOrder(t *testing.T) {
	t.Parallel()

	at := attributed.New[Attr](text.String("abcdef"))
	want := []string{"z", "a", "m", "a", "z"}
	for _, name := range want {
		require.NoError(t, at.Apply(1, 4, Attr{Name: name}))
	}
	require.NoError(t, at.Apply(0, 6, Attr{Name: "outer"}))
	require.NoError(t, at.Apply(2, 3, Attr{Name: "inner"}))

	assert.Equal(t, append(want, "outer", "inner"), names(at.AttributesAt(2)))
	assert.Equal(t, append(want, "outer", "inner"), names(at.AttributesForRange(0, 6)))
	assert.Equal(t, append(want, "outer"), names(at.AttributesForRange(3, 4)))
}

// TestQueriesMatchBruteForce checks the indexed queries against a direct
// reading of their definitions, over randomly generated spans.
func TestQueriesMatchBruteForce(t *testing.T) {
	t.Parallel()

	const n = 40
	rng := rand.New(rand.NewPCG(1, 2))
	at := attributed.New[Attr](text.String(string(make([]byte, n))))

	var spans []attributed.Bounds
	for i := range 200 {
		b := randomBounds(rng, n)
		if err := at.ApplyBounds(b, Attr{Name: fmt.Sprint(i)}); err != nil {
			continue
		}
		spans = append(spans, b)
	}
	require.NotEmpty(t, spans)

	for i := -1; i <= n+1; i++ {
		var want []string
		for j, b := range spans {
			start, end := b.Resolve(n)
			if start <= i && i < end {
				want = append(want, fmt.Sprint(j))
			}
		}
		assert.Equal(t, want, namesByIndex(at, at.AttributesAt(i)), "at %d", i)
	}

	for qs := -1; qs <= n+1; qs++ {
		for qe := qs; qe <= n+1; qe++ {
			var want []string
			for j, b := range spans {
				start, end := b.Resolve(n)
				if start < end && qs < qe && start < qe && end > qs {
					want = append(want, fmt.Sprint(j))
				}
			}
			got := namesByIndex(at, at.AttributesForRange(qs, qe))
			if !assert.Equal(t, want, got, "range [%d, %d)", qs, qe) {
				return
			}
		}
	}
}

// namesByIndex is like names, but maps each attribute to its position among
// the successfully applied spans, so that results can be compared with a
// list of bounds.
func namesByIndex(at *attributed.Text[text.String, Attr], seq iter.Seq[Attr]) []string {
	pos := make(map[string]string)
	var i int
	for _, attr := range at.Spans() {
		pos[attr.Name] = fmt.Sprint(i)
		i++
	}

	var out []string
	for attr := range seq {
		out = append(out, pos[attr.Name])
	}
	return out
}

func randomBounds(rng *rand.Rand, n int) attributed.Bounds {
	bound := func() attributed.Bound {
		v := rng.IntN(n + 2)
		switch rng.IntN(3) {
		case 0:
			return attributed.Bound{}
		case 1:
			return attributed.Inclusive(v)
		default:
			return attributed.Exclusive(v)
		}
	}
	return attributed.Bounds{Start: bound(), End: bound()}
}

// TestStaleIndex checks that queries stay correct when the storage is
// modified without going through Delete.
func TestStaleIndex(t *testing.T) {
	t.Parallel()

	buf := text.NewBuffer("Hello World")
	at := attributed.New[Attr](buf)
	require.NoError(t, at.Apply(0, 5, Attr{Name: "a"}))
	require.NoError(t, at.ApplyBounds(attributed.From(6), Attr{Name: "tail"}))

	buf.ReplaceRange(11, 11, "!!")
	assert.Equal(t, []string{"tail"}, names(at.AttributesAt(12)))
	assert.Equal(t, []string{"a", "tail"}, names(at.AttributesForRange(4, 13)))

	// Applying a new attribute brings the index up to date.
	require.NoError(t, at.Apply(11, 13, Attr{Name: "bang"}))
	assert.Equal(t, []string{"tail", "bang"}, names(at.AttributesAt(12)))
}

func TestConcurrentQueries(t *testing.T) {
	t.Parallel()

	at := attributed.New[Attr](text.String("The quick brown fox"))
	require.NoError(t, at.Apply(4, 9, Attr{Name: "adj"}))
	require.NoError(t, at.Apply(10, 15, Attr{Name: "adj"}))
	require.NoError(t, at.Apply(16, 19, Attr{Name: "noun"}))

	var g errgroup.Group
	for i := range at.Len() {
		g.Go(func() error {
			got := names(at.AttributesAt(i))
			want := names(at.AttributesForRange(i, i+1))
			if !slices.Equal(got, want) {
				return fmt.Errorf("at %d: %v != %v", i, got, want)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
