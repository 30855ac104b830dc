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
	"strings"
)

// Bound is one end of a [Bounds].
//
// The zero value is unbounded.
type Bound struct {
	Kind  BoundKind
	Value int // Ignored if Kind is Unbounded.
}

// Inclusive returns a bound which includes v.
func Inclusive(v int) Bound {
	return Bound{Kind: Included, Value: v}
}

// Exclusive returns a bound which excludes v.
func Exclusive(v int) Bound {
	return Bound{Kind: Excluded, Value: v}
}

// Bounds is a range of text indices, each end of which may be inclusive,
// exclusive, or unbounded.
//
// The zero value covers the whole text, whatever its length.
type Bounds struct {
	Start, End Bound
}

// Range returns the half-open range [start, end).
func Range(start, end int) Bounds {
	return Bounds{Inclusive(start), Exclusive(end)}
}

// RangeInclusive returns the closed range [start, end].
func RangeInclusive(start, end int) Bounds {
	return Bounds{Inclusive(start), Inclusive(end)}
}

// From returns the range from start to the end of the text.
func From(start int) Bounds {
	return Bounds{Start: Inclusive(start)}
}

// To returns the range from the start of the text up to, but excluding, end.
func To(end int) Bounds {
	return Bounds{End: Exclusive(end)}
}

// ToInclusive returns the range from the start of the text through end.
func ToInclusive(end int) Bounds {
	return Bounds{End: Inclusive(end)}
}

// Full returns the range covering the whole text.
func Full() Bounds {
	return Bounds{}
}

// Resolve converts these bounds into a half-open range [start, end) over a
// text of length n.
//
// An unbounded start resolves to 0 and an unbounded end resolves to n.
func (b Bounds) Resolve(n int) (start, end int) {
	switch b.Start.Kind {
	case Included:
		start = b.Start.Value
	case Excluded:
		start = b.Start.Value + 1
	}

	switch b.End.Kind {
	case Included:
		end = b.End.Value + 1
	case Excluded:
		end = b.End.Value
	default:
		end = n
	}
	return start, end
}

// Contains returns whether index lies within these bounds, over a text of
// length n.
func (b Bounds) Contains(index, n int) bool {
	start, end := b.Resolve(n)
	return start <= index && index < end
}

// Overlaps returns whether these bounds share at least one index with c, over
// a text of length n.
//
// Ranges which merely abut do not overlap, and an empty or inverted range
// overlaps nothing.
func (b Bounds) Overlaps(c Bounds, n int) bool {
	start, end := b.Resolve(n)
	cStart, cEnd := c.Resolve(n)
	return overlaps(start, end, cStart, cEnd)
}

// String implements [fmt.Stringer].
//
// Bounds are printed in interval notation, with .. standing in for an
// unbounded end: [0, 5), (2, 4], [3, ..).
func (b Bounds) String() string {
	var out strings.Builder
	switch b.Start.Kind {
	case Included:
		fmt.Fprintf(&out, "[%d", b.Start.Value)
	case Excluded:
		fmt.Fprintf(&out, "(%d", b.Start.Value)
	default:
		out.WriteString("[..")
	}

	out.WriteString(", ")

	switch b.End.Kind {
	case Included:
		fmt.Fprintf(&out, "%d]", b.End.Value)
	case Excluded:
		fmt.Fprintf(&out, "%d)", b.End.Value)
	default:
		out.WriteString("..)")
	}
	return out.String()
}

// shift moves both ends of b left by delta. Unbounded ends stay unbounded.
func (b Bounds) shift(delta int) Bounds {
	if b.Start.Kind != Unbounded {
		b.Start.Value -= delta
	}
	if b.End.Kind != Unbounded {
		b.End.Value -= delta
	}
	return b
}

// negative returns whether either end of b has a negative value.
func (b Bounds) negative() bool {
	return (b.Start.Kind != Unbounded && b.Start.Value < 0) ||
		(b.End.Kind != Unbounded && b.End.Value < 0)
}

// overlaps returns whether two resolved half-open ranges share an index.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < aEnd && bStart < bEnd &&
		aStart < bEnd && aEnd > bStart
}
