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

import "github.com/bufbuild/styledtext/text"

// Delete removes the half-open range [start, end) from the text, and rebases
// every attribute to match.
//
// Each attribute is compared against the deleted range using the bounds it
// covered before the deletion:
//
//   - If it ends at or before start, it is left exactly as it was.
//   - If it begins at or after end, it moves left by the deleted length. Its
//     [EditBehavior] is not consulted.
//   - Otherwise the deletion touches it. If [PolicyOf] says [Remove], the
//     attribute is dropped. If it says [Keep] and the attribute surrounds the
//     deleted range on both sides, it shrinks by the deleted length. If it says
//     [Keep] and the deletion reaches past one of its edges, or covers it
//     entirely, it is cut down to the part that came before start; whatever
//     followed the deleted range is not kept.
//
// Attributes left covering an empty range are dropped.
//
// Returns a [*RangeError] without modifying anything if start is negative,
// start > end, or end is greater than [Text.Len].
func Delete[T text.Editable, A any](t *Text[T, A], start, end int) error {
	n := t.text.Len()
	if start < 0 || start > end || end > n {
		return &RangeError{Start: start, End: end, Len: n}
	}

	t.text.ReplaceRange(start, end, "")

	kept := t.spans[:0]
	for _, s := range t.spans {
		if s, ok := rebase(s, start, end, n); ok {
			kept = append(kept, s)
		}
	}
	clear(t.spans[len(kept):])
	t.spans = kept

	t.reindex()
	return nil
}

// rebase computes what happens to s when [cutStart, cutEnd) is deleted from a
// text of length n. Returns false if s should be dropped.
func rebase[A any](s span[A], cutStart, cutEnd, n int) (span[A], bool) {
	start, end := s.bounds.Resolve(n)
	switch {
	case end <= cutStart:
		return s, true

	case start >= cutEnd:
		s.bounds = s.bounds.shift(cutEnd - cutStart)
		return s, true

	case PolicyOf(s.attr) == Remove:
		return s, false

	case start < cutStart && end > cutEnd:
		end -= cutEnd - cutStart

	default:
		start = min(start, cutStart)
		end = min(end, cutStart)
	}

	s.bounds = Range(start, end)
	return s, start < end
}
