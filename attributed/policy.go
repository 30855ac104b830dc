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

// EditBehavior is implemented by attributes which care about what happens to
// them when the text they cover is edited.
type EditBehavior interface {
	// OnEdit decides whether to keep or remove this attribute when the text
	// it covers has been edited.
	OnEdit() SpanEditAction
}

// PolicyOf returns what should happen to attr when the text it covers is
// edited.
//
// This is attr.OnEdit() if A implements [EditBehavior], and [Keep] otherwise.
func PolicyOf[A any](attr A) SpanEditAction {
	if b, ok := any(attr).(EditBehavior); ok {
		return b.OnEdit()
	}
	return Keep
}
