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

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Buffer is an owned, growable UTF-8 text buffer, indexed by byte.
//
// A zero Buffer is empty and ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a new buffer holding a copy of text.
func NewBuffer(text string) *Buffer {
	return &Buffer{buf: []byte(text)}
}

// Len implements [Storage].
func (b *Buffer) Len() int {
	return len(b.buf)
}

// String returns the contents of this buffer.
func (b *Buffer) String() string {
	return string(b.buf)
}

// ReplaceRange implements [Editable].
//
// Panics if start or end do not lie on a UTF-8 sequence boundary.
func (b *Buffer) ReplaceRange(start, end int, replacement string) {
	checkRange(start, end, len(b.buf))
	if !b.isBoundary(start) || !b.isBoundary(end) {
		panic(fmt.Sprintf("text: range [%d, %d) splits a UTF-8 sequence", start, end))
	}

	b.buf = slices.Replace(b.buf, start, end, []byte(replacement)...)
}

func (b *Buffer) isBoundary(i int) bool {
	return i == len(b.buf) || utf8.RuneStart(b.buf[i])
}

// checkRange panics if [start, end) is not a valid range of a text of length n.
func checkRange(start, end, n int) {
	if start < 0 || start > end || end > n {
		panic(fmt.Sprintf("text: range [%d, %d) out of bounds for length %d", start, end, n))
	}
}
