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

package attributed

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bufbuild/styledtext/internal/ext/iterx"
	"github.com/bufbuild/styledtext/internal/ext/slicesx"
	"github.com/bufbuild/styledtext/internal/interval"
	"github.com/bufbuild/styledtext/text"
)

// Text is a block of text with attributes applied to ranges within it.
//
// Attributes are kept in the order they were applied, which is also the order
// queries report them in. Overlapping attributes, even equal ones, are never
// merged: queries report every match, and it is up to the caller to decide
// which one wins.
//
// A Text owns its storage; the storage should only be modified through
// [Delete]. Queries may run concurrently with each other, but not with
// [Text.Apply], [Text.ApplyBounds], or [Delete].
type Text[T text.Storage, A any] struct {
	text  T
	spans []span[A]

	// Maps each index of the text to the positions in spans of the
	// attributes covering it. Unbounded ends are resolved against
	// indexedLen; if the storage length no longer matches it, queries scan
	// spans directly instead.
	index      interval.Intersect[int, int]
	indexedLen int
}

// span is an attribute along with the bounds it was applied to.
type span[A any] struct {
	bounds Bounds
	attr   A
}

// New creates a Text over storage with no attributes applied.
func New[A any, T text.Storage](storage T) *Text[T, A] {
	return &Text[T, A]{
		text:       storage,
		indexedLen: storage.Len(),
	}
}

// Text returns the underlying text storage.
func (t *Text[T, A]) Text() T {
	return t.text
}

// Len returns the length of the underlying text.
func (t *Text[T, A]) Len() int {
	return t.text.Len()
}

// Apply applies attr to the half-open range [start, end).
//
// Returns a [*BoundsError] if start or end is negative or greater than
// [Text.Len]. An empty range at the very end of the text is valid. An inverted
// range is accepted, but will never match any query.
func (t *Text[T, A]) Apply(start, end int, attr A) error {
	n := t.text.Len()
	if start < 0 || end < 0 || start > n || end > n {
		return &BoundsError{Bounds: Range(start, end), Len: n}
	}

	t.push(Range(start, end), attr)
	return nil
}

// ApplyBounds applies attr to the range described by b.
//
// Returns a [*BoundsError] if b resolves to an end greater than [Text.Len] or
// if either bound has a negative value. The start is not checked against the
// length: a start past the end produces an empty range, which never matches
// any query.
//
// Unbounded ends are resolved each time the attribute is queried, so an
// attribute applied to [From](i) keeps reaching the end of the text.
func (t *Text[T, A]) ApplyBounds(b Bounds, attr A) error {
	n := t.text.Len()
	if _, end := b.Resolve(n); end > n || b.negative() {
		return &BoundsError{Bounds: b, Len: n}
	}

	t.push(b, attr)
	return nil
}

// AttributesAt returns an iterator over the attributes that apply at index,
// in the order they were applied.
//
// This does not resolve conflicting attributes; every match is reported.
func (t *Text[T, A]) AttributesAt(index int) iter.Seq[A] {
	return func(yield func(A) bool) {
		n := t.text.Len()
		if n != t.indexedLen {
			t.scan(func(b Bounds) bool { return b.Contains(index, n) })(yield)
			return
		}

		for _, i := range t.index.Get(index).Value {
			if !yield(t.spans[i].attr) {
				return
			}
		}
	}
}

// AttributesForRange returns an iterator over the attributes that overlap the
// half-open range [start, end), in the order they were applied.
//
// An attribute overlaps the range if they share at least one index, so
// attributes that merely abut the range do not match. An empty or inverted
// range matches nothing; use [Text.AttributesAt] to query a single index.
func (t *Text[T, A]) AttributesForRange(start, end int) iter.Seq[A] {
	return t.AttributesForBounds(Range(start, end))
}

// AttributesForBounds is like [Text.AttributesForRange], but takes arbitrary
// bounds. Unbounded ends are resolved against the current length of the text.
func (t *Text[T, A]) AttributesForBounds(b Bounds) iter.Seq[A] {
	return func(yield func(A) bool) {
		n := t.text.Len()
		start, end := b.Resolve(n)
		switch {
		case start >= end:
			return
		case n != t.indexedLen:
			t.scan(func(bounds Bounds) bool {
				spanStart, spanEnd := bounds.Resolve(n)
				return overlaps(spanStart, spanEnd, start, end)
			})(yield)
			return
		}

		// A span may be split across several entries, so matches need to be
		// put back in application order and deduplicated.
		var hits []int
		for entry := range t.index.Overlapping(start, end-1) {
			hits = append(hits, entry.Value...)
		}
		slices.Sort(hits)
		for _, i := range slicesx.Dedup(hits) {
			if !yield(t.spans[i].attr) {
				return
			}
		}
	}
}

// Spans returns an iterator over every attribute along with the bounds it
// currently covers, in the order they were applied.
func (t *Text[T, A]) Spans() iter.Seq2[Bounds, A] {
	return func(yield func(Bounds, A) bool) {
		for _, s := range t.spans {
			if !yield(s.bounds, s.attr) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
//
// The verb is applied to each attribute.
func (t *Text[T, A]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	for i, sp := range t.spans {
		if i > 0 {
			fmt.Fprint(s, ", ")
		}
		fmt.Fprintf(s, "%v: ", sp.bounds)
		fmt.Fprintf(s, fmt.FormatString(s, v), sp.attr)
	}
	fmt.Fprint(s, "}")
}

// scan returns an iterator over the attributes of every span whose bounds
// satisfy p, without consulting the index.
func (t *Text[T, A]) scan(p func(Bounds) bool) iter.Seq[A] {
	return iterx.FilterMap(slices.Values(t.spans), func(s span[A]) (A, bool) {
		return s.attr, p(s.bounds)
	})
}

// push appends a new span and indexes it.
func (t *Text[T, A]) push(b Bounds, attr A) {
	t.spans = append(t.spans, span[A]{bounds: b, attr: attr})
	if t.text.Len() != t.indexedLen {
		t.reindex()
		return
	}
	t.indexSpan(len(t.spans) - 1)
}

// reindex rebuilds the index from scratch against the current length of the
// text.
func (t *Text[T, A]) reindex() {
	t.index.Clear()
	t.indexedLen = t.text.Len()
	for i := range t.spans {
		t.indexSpan(i)
	}
}

func (t *Text[T, A]) indexSpan(i int) {
	start, end := t.spans[i].bounds.Resolve(t.indexedLen)
	if start < end {
		// The index works with closed intervals.
		t.index.Insert(start, end-1, i)
	}
}
