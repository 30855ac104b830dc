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

// Package interval provides interval collections keyed on integer endpoints.
package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Intersect is an interval intersection map: a collection of closed intervals,
// partitioned into disjoint entries such that each entry records every value
// whose interval covers it.
//
// Values within an entry appear in the order they were inserted.
//
// A zero value is ready to use.
type Intersect[K Endpoint, V any] struct {
	// Keys in this map are the ends of the entries.
	tree    btree.Map[K, *Entry[K, []V]]
	pending []*Entry[K, []V] // Scratch space for Insert().
}

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is an entry in an [Intersect]: a maximal interval over which the set
// of covering values does not change.
type Entry[K Endpoint, V any] struct {
	Start, End K // Inclusive.
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Len returns the number of entries in this map.
func (m *Intersect[K, V]) Len() int {
	return m.tree.Len()
}

// Clear removes every interval from this map.
func (m *Intersect[K, V]) Clear() {
	m.tree.Clear()
	clear(m.pending)
	m.pending = m.pending[:0]
}

// Get returns the entry which contains point.
//
// If no interval contains point, the returned [Entry].Value is nil.
func (m *Intersect[K, V]) Get(point K) Entry[K, []V] {
	iter := m.tree.Iter()
	if !iter.Seek(point) || point < iter.Value().Start {
		// Seek() guarantees point <= End; the entry must also start at or
		// before point to contain it.
		return Entry[K, []V]{}
	}
	return *iter.Value()
}

// Entries returns an iterator over the entries in this map, in order.
func (m *Intersect[K, V]) Entries() iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(*iter.Value()) {
				return
			}
		}
	}
}

// Overlapping returns an iterator over the entries which intersect the closed
// interval [start, end], in order.
func (m *Intersect[K, V]) Overlapping(start, end K) iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		for entry := range m.intersect(start, end) {
			if !yield(*entry) {
				return
			}
		}
	}
}

// Insert inserts the closed interval [start, end] with the given value.
//
// Returns true if the interval was disjoint from all others in the map.
func (m *Intersect[K, V]) Insert(start, end K, value V) (disjoint bool) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	var prev *Entry[K, []V]
	for entry := range m.intersect(start, end) {
		if prev == nil && start < entry.Start {
			// Fill the gap between start and the first overlapping entry.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: start,
				End:   entry.Start - 1,
				Value: []V{value},
			})
		}

		// Entries produced by splitting share a backing array, so every
		// append below must go through a clipped slice.
		orig := slices.Clip(entry.Value)

		// Split off the part of entry that lies after end.
		if entry.Contains(end) && end < entry.End {
			head := &Entry[K, []V]{
				Start: entry.Start,
				End:   end,
				Value: append(orig, value),
			}
			entry.Start = end + 1

			m.pending = append(m.pending, head)
			entry = head
		}

		// Split off the part of entry that lies before start. The split-off
		// piece does not overlap [start, end], so it keeps the old values.
		if entry.Contains(start) && entry.Start < start {
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: entry.Start,
				End:   start - 1,
				Value: orig,
			})
			entry.Start = start
		}

		entry.Value = append(orig, value)

		if prev != nil && prev.End+1 < entry.Start {
			// Fill the gap between two overlapping entries.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: prev.End + 1,
				End:   entry.Start - 1,
				Value: []V{value},
			})
		}

		prev = entry
	}

	if prev == nil {
		m.tree.Set(end, &Entry[K, []V]{
			Start: start,
			End:   end,
			Value: []V{value},
		})
		return true
	}

	if prev.End < end {
		// Fill the gap between the last overlapping entry and end.
		m.pending = append(m.pending, &Entry[K, []V]{
			Start: prev.End + 1,
			End:   end,
			Value: []V{value},
		})
	}

	for _, entry := range m.pending {
		m.tree.Set(entry.End, entry)
	}
	clear(m.pending)
	m.pending = m.pending[:0]
	return false
}

// intersect returns an iterator over the entries that intersect [start, end].
//
// The yielded pointers alias the tree's values, so callers may shorten them in
// place as long as their End (the tree key) is unchanged.
func (m *Intersect[K, V]) intersect(start, end K) iter.Seq[*Entry[K, []V]] {
	return func(yield func(*Entry[K, []V]) bool) {
		// Seek() finds the least entry [c, d] with start <= d. Walk forward
		// from there until we reach an entry with end < c.
		iter := m.tree.Iter()
		for more := iter.Seek(start); more; more = iter.Next() {
			if end < iter.Value().Start || !yield(iter.Value()) {
				return
			}
		}
	}
}
