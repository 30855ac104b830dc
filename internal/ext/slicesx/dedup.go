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

package slicesx

// Dedup replaces runs of consecutive equal elements with a single element.
//
// Applied to a sorted slice, this leaves one copy of each distinct element.
func Dedup[S ~[]E, E comparable](s S) S {
	return DedupKey(s, func(e E) E { return e }, func(run []E) E { return run[0] })
}

// DedupKey replaces runs of consecutive elements which share a key with a
// single element, chosen from the run by choose.
//
// This operates in place, and returns a prefix of s.
func DedupKey[S ~[]E, E any, K comparable](
	s S,
	key func(E) K,
	choose func([]E) E,
) S {
	if len(s) == 0 {
		return s
	}

	out := 0 // Index to write the next chosen element at.
	run := 0 // Start of the current run.
	runKey := key(s[0])
	for i := 1; i < len(s); i++ {
		k := key(s[i])
		if k == runKey {
			continue
		}

		s[out] = choose(s[run:i])
		out++
		run, runKey = i, k
	}

	s[out] = choose(s[run:])
	return s[:out+1]
}
