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

// Package attributed provides text with attributes applied to ranges of it.
//
// An attribute is any value describing a range of the text: a style like
// "bold", or an annotation like "spelling error". Attributes live alongside
// the text rather than in it, in a [Text], which can answer which attributes
// apply at a given index or to a given range.
//
// When the underlying storage is [text.Editable], [Delete] removes a range of
// the text and rebases every attribute to match. Attributes that implement
// [EditBehavior] may ask to be removed instead when an edit touches them.
package attributed

//go:generate go run ../internal/enum bound_kind.yaml edit.yaml
