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

package text

// Storage is a block of text that can be wrapped by an attributed text.
type Storage interface {
	// Len returns the length of the text, in this storage's index unit.
	Len() int
}

// Editable is a [Storage] that can be edited in place.
type Editable interface {
	Storage

	// ReplaceRange removes the range [start, end) and puts replacement in
	// its place. Everything after end shifts by the length of replacement
	// minus end - start.
	//
	// Must panic if start > end, if either is outside of [0, Len()], or if
	// either would split a unit of content that cannot be split.
	ReplaceRange(start, end int, replacement string)
}

// IsEmpty returns whether s has zero length.
func IsEmpty(s Storage) bool {
	return s.Len() == 0
}

// String is a read-only, byte-indexed view of a string.
//
// Go strings are immutable, so a String may be freely shared between
// attributed texts.
type String string

// Len implements [Storage].
func (s String) Len() int {
	return len(s)
}

// Bytes is a read-only, byte-indexed view of a byte slice.
//
// The caller must not modify the underlying slice while it is in use.
type Bytes []byte

// Len implements [Storage].
func (b Bytes) Len() int {
	return len(b)
}

var (
	_ Storage  = String("")
	_ Storage  = Bytes(nil)
	_ Editable = (*Buffer)(nil)
	_ Editable = (*Graphemes)(nil)
)
