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
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when applying an attribute to bounds which
	// do not fit in the text.
	ErrInvalidBounds = errors.New("attributed: invalid bounds")

	// ErrInvalidRange is returned when deleting a range which is inverted or
	// does not fit in the text.
	ErrInvalidRange = errors.New("attributed: invalid range")
)

// BoundsError is returned by [Text.Apply] and [Text.ApplyBounds] when the
// bounds given do not fit in the text.
//
// It unwraps to [ErrInvalidBounds].
type BoundsError struct {
	Bounds Bounds
	Len    int // The length of the text at the time of the call.
}

// Error implements [error].
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: %v for length %d", ErrInvalidBounds, e.Bounds, e.Len)
}

// Unwrap returns [ErrInvalidBounds].
func (e *BoundsError) Unwrap() error {
	return ErrInvalidBounds
}

// RangeError is returned by [Delete] when the range given is inverted or does
// not fit in the text.
//
// It unwraps to [ErrInvalidRange].
type RangeError struct {
	Start, End int
	Len        int // The length of the text at the time of the call.
}

// Error implements [error].
func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: [%d, %d) for length %d", ErrInvalidRange, e.Start, e.End, e.Len)
}

// Unwrap returns [ErrInvalidRange].
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
